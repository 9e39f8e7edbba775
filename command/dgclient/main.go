// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/ral-facilities/datagateway-sub002/configuration"
	"github.com/ral-facilities/datagateway-sub002/fault"
)

const (
	configEnvironment  = "DGCLIENT_CONFIG"
	sessionEnvironment = "DATAGATEWAY_SESSION"
	defaultConfigFile  = "dgclient.conf"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "dgclient"
	app.Usage = "browse a DataGateway catalogue and request downloads"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "config, c",
			Value:  defaultConfigFile,
			EnvVar: configEnvironment,
			Usage:  " configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "session, s",
			Value: "",
			Usage: " session `ID` overriding the configured session file",
		},
	}

	entityFlag := cli.StringFlag{
		Name:  "type, t",
		Value: "investigation",
		Usage: " entity `TYPE` [investigation|dataset|datafile]",
	}
	tableFlags := []cli.Flag{
		entityFlag,
		cli.StringSliceFlag{
			Name:  "sort, o",
			Usage: " sort by `COLUMN[:asc|desc]`, repeat for more columns",
		},
		cli.StringSliceFlag{
			Name:  "filter, f",
			Usage: " rows whose column contains text `COLUMN:TEXT`",
		},
		cli.StringSliceFlag{
			Name:  "exclude, x",
			Usage: " rows whose column does not contain text `COLUMN:TEXT`",
		},
		cli.StringSliceFlag{
			Name:  "where, w",
			Usage: " rows whose column equals `COLUMN:VALUE`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "list",
			Usage:     "list one page of entities",
			ArgsUsage: "\n   (* = required)",
			Flags: append(tableFlags,
				cli.IntFlag{
					Name:  "start",
					Value: 0,
					Usage: " first row `INDEX`",
				},
				cli.IntFlag{
					Name:  "rows, n",
					Value: 20,
					Usage: " page size `COUNT`",
				},
				cli.BoolFlag{
					Name:  "child-count",
					Usage: " include the number of child entities",
				},
				cli.BoolFlag{
					Name:  "size",
					Usage: " include the total size of each entity",
				},
			),
			Action: runList,
		},
		{
			Name:   "count",
			Usage:  "count matching entities",
			Flags:  tableFlags,
			Action: runCount,
		},
		{
			Name:   "ids",
			Usage:  "ids of every matching entity",
			Flags:  tableFlags,
			Action: runIDs,
		},
		{
			Name:      "details",
			Usage:     "full record of one entity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				entityFlag,
				cli.Int64Flag{
					Name:  "id, i",
					Usage: "*entity `ID`",
				},
				cli.StringFlag{
					Name:  "include",
					Value: "",
					Usage: " related `ENTITY` to include",
				},
			},
			Action: runDetails,
		},
		{
			Name:      "size",
			Usage:     "total size and child count of one entity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				entityFlag,
				cli.Int64Flag{
					Name:  "id, i",
					Usage: "*entity `ID`",
				},
			},
			Action: runSize,
		},
		{
			Name:   "cart",
			Usage:  "show the download cart",
			Action: runCart,
		},
		{
			Name:      "add",
			Usage:     "add entities to the download cart",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				entityFlag,
				cli.StringFlag{
					Name:  "ids, i",
					Usage: "*comma separated entity `IDS`",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "remove",
			Usage:     "remove entities from the download cart",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				entityFlag,
				cli.StringFlag{
					Name:  "ids, i",
					Usage: "*comma separated entity `IDS`",
				},
			},
			Action: runRemove,
		},
		{
			Name:  "methods",
			Usage: "availability of the configured access methods",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "visit",
					Value: "",
					Usage: " check queueing for visit `ID`",
				},
			},
			Action: runMethods,
		},
		{
			Name:      "submit",
			Usage:     "submit the cart or queue a visit for download",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "method, m",
					Value: "",
					Usage: " access `METHOD` [first available]",
				},
				cli.StringFlag{
					Name:  "email, e",
					Value: "",
					Usage: " notification `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: " download file `NAME` [facility and time]",
				},
				cli.StringFlag{
					Name:  "visit",
					Value: "",
					Usage: " queue every file of visit `ID` instead of the cart",
				},
				cli.Int64Flag{
					Name:  "total-size",
					Usage: " cart size in `BYTES` for the time estimate",
				},
				cli.BoolFlag{
					Name:  "two-level",
					Usage: " storage is two level, no time estimate",
				},
			},
			Action: runSubmit,
		},
		{
			Name:   "monitor",
			Usage:  "follow submitted downloads until they finish",
			Action: runMonitor,
		},
		{
			Name:  "version",
			Usage: "display version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and start logging
	app.Before = func(c *cli.Context) error {

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "" == command || "version" == command || "help" == command || "h" == command {
			return nil
		}

		file := c.GlobalString("config")
		verbose := c.GlobalBool("verbose")
		if verbose {
			fmt.Fprintf(c.App.ErrWriter, "reading config file: %s\n", file)
		}

		conf, err := configuration.Load(file)
		if nil != err {
			return fmt.Errorf("failed to read configuration from: %q  error: %s", file, err)
		}

		if err = logger.Initialise(conf.Logging); nil != err {
			return fmt.Errorf("logger setup failed with error: %s", err)
		}
		if err = fault.Initialise(); nil != err {
			logger.Finalise()
			return fmt.Errorf("fault setup failed with error: %s", err)
		}

		ctx, cancel := context.WithCancel(context.Background())

		// turn Signals into cancellation of the running command
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-ch
			logger.New("main").Infof("received signal: %v", sig)
			cancel()
		}()

		m, err := newMetadata(ctx, cancel, file, conf, c)
		if nil != err {
			cancel()
			fault.Finalise()
			logger.Finalise()
			return err
		}
		c.App.Metadata["config"] = m
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.close()
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
