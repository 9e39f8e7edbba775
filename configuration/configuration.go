// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/ral-facilities/datagateway-sub002/fault"
	"github.com/ral-facilities/datagateway-sub002/publish"
)

// basic defaults (directories and files are relative to the
// "data_directory" from the configuration file, "." is the directory
// holding the configuration file)
const (
	defaultDataDirectory    = "."
	defaultHistoryDirectory = "history"
	defaultZipType          = "ZIP"

	defaultRetryAttempts = 3
	defaultRateLimit     = 20
	defaultRateBurst     = 40

	defaultMonitorInterval = 30

	defaultLogDirectory = "log"
	defaultLogFile      = "dgclient.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "error",
	}
)

func (m LoglevelMap) copy() LoglevelMap {
	levels := make(LoglevelMap, len(m))
	for k, v := range m {
		levels[k] = v
	}
	return levels
}

// AccessMethod - one transport offered for downloads, listed in
// display order
type AccessMethod struct {
	Name        string `gluamapper:"name" json:"name"`
	DisplayName string `gluamapper:"display_name" json:"display_name"`
	Description string `gluamapper:"description" json:"description"`
}

// MonitorType - settings of the download monitor loop
type MonitorType struct {
	IntervalSeconds int    `gluamapper:"interval_seconds" json:"interval_seconds"`
	MetricsListen   string `gluamapper:"metrics_listen" json:"metrics_listen"`
}

// Configuration - everything read from the configuration file
type Configuration struct {
	DataDirectory    string                `gluamapper:"data_directory" json:"data_directory"`
	FacilityName     string                `gluamapper:"facility_name" json:"facility_name"`
	APIURL           string                `gluamapper:"api_url" json:"api_url"`
	DownloadAPIURL   string                `gluamapper:"download_api_url" json:"download_api_url"`
	ZipType          string                `gluamapper:"zip_type" json:"zip_type"`
	AccessMethods    []AccessMethod        `gluamapper:"access_methods" json:"access_methods"`
	RetryAttempts    int                   `gluamapper:"retry_attempts" json:"retry_attempts"`
	RateLimit        float64               `gluamapper:"rate_limit" json:"rate_limit"`
	RateBurst        int                   `gluamapper:"rate_burst" json:"rate_burst"`
	HistoryDirectory string                `gluamapper:"history_directory" json:"history_directory"`
	SessionFile      string                `gluamapper:"session_file" json:"session_file"`
	Publish          publish.Configuration `gluamapper:"publish" json:"publish"`
	Monitor          MonitorType           `gluamapper:"monitor" json:"monitor"`
	Logging          logger.Configuration  `gluamapper:"logging" json:"logging"`
}

// Load - read, default and verify a configuration file
func Load(fileName string) (*Configuration, error) {

	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	configDirectory, _ := filepath.Split(fileName)

	options := &Configuration{
		DataDirectory:    defaultDataDirectory,
		ZipType:          defaultZipType,
		RetryAttempts:    defaultRetryAttempts,
		RateLimit:        defaultRateLimit,
		RateBurst:        defaultRateBurst,
		HistoryDirectory: defaultHistoryDirectory,
		Monitor: MonitorType{
			IntervalSeconds: defaultMonitorInterval,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels.copy(),
		},
	}

	if err := ParseConfigurationFile(fileName, options); err != nil {
		return nil, err
	}

	if err := options.verify(configDirectory); nil != err {
		return nil, err
	}
	return options, nil
}

func (c *Configuration) verify(configDirectory string) error {
	if "" == c.FacilityName {
		return fault.ErrMissingFacilityName
	}
	c.APIURL = strings.TrimSpace(c.APIURL)
	c.DownloadAPIURL = strings.TrimSpace(c.DownloadAPIURL)
	if "" == c.APIURL || "" == c.DownloadAPIURL {
		return fault.ErrMissingURL
	}

	c.ZipType = strings.ToUpper(c.ZipType)
	switch c.ZipType {
	case "ZIP", "ZIP_AND_COMPRESS":
	default:
		return fault.ErrInvalidZipType
	}

	for i, m := range c.AccessMethods {
		if "" == m.Name {
			return fault.ErrInvalidAccessMethod
		}
		if "" == m.DisplayName {
			c.AccessMethods[i].DisplayName = strings.ToUpper(m.Name)
		}
	}

	if c.RetryAttempts < 0 {
		c.RetryAttempts = 0
	}
	if c.RateLimit < 0 || c.RateBurst < 0 {
		return fault.ErrInvalidRateLimit
	}
	if c.Monitor.IntervalSeconds <= 0 {
		c.Monitor.IntervalSeconds = defaultMonitorInterval
	}

	// ensure absolute data directory
	switch c.DataDirectory {
	case "", ".":
		c.DataDirectory = configDirectory // same directory as the configuration file
	case "~":
		return fault.ErrFileNotFound
	}
	c.DataDirectory = ensureAbsolute(configDirectory, c.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(c.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fault.ErrFileNotFound
	}

	// must be a simple file name, the directory is prefixed by the
	// logger
	switch filepath.Dir(c.Logging.File) {
	case "", ".":
	default:
		return fault.ErrNotPlainFileName
	}

	if "" != c.SessionFile {
		c.SessionFile = ensureAbsolute(c.DataDirectory, c.SessionFile)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&c.Logging.Directory,
		&c.HistoryDirectory,
	} {
		*d = ensureAbsolute(c.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return err
		}
	}
	return nil
}

// ensureAbsolute - if path is relative prefix it with directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
