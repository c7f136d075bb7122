// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package idfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/foundriesio/sensor-validator/context"
	"github.com/foundriesio/sensor-validator/sensor"
)

const IdColumn = "id"

var ErrUnreadable = errors.New("unreadable sensor id file")

type row struct {
	Id string `csv:"id"`
}

// Parse reads sensor ids from a CSV file whose header has an "id" column.
// Header names are matched case-insensitively. Rows with an empty id are skipped;
// rows with an id that is not an integer are logged and skipped.
func Parse(ctx context.Context, r io.Reader) ([]sensor.ID, error) {
	log := context.CtxGetLog(ctx)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []row
	if err := gocsv.UnmarshalCSV(&headerReader{Reader: reader}, &rows); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreadable, err)
	}

	ids := make([]sensor.ID, 0, len(rows))
	for i, row := range rows {
		value := strings.TrimSpace(row.Id)
		if value == "" {
			continue
		}
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			// Header is line 1
			log.Error("File contains id that is not a number - skip it", "line", i+2, "id", value)
			continue
		}
		ids = append(ids, sensor.ID(id))
	}
	return ids, nil
}

// headerReader normalizes the first record so that " ID " matches the id column.
type headerReader struct {
	*csv.Reader
	headerDone bool
}

func (r *headerReader) Read() ([]string, error) {
	record, err := r.Reader.Read()
	if err != nil {
		return record, err
	}
	if !r.headerDone {
		r.headerDone = true
		if !normalizeHeader(record) {
			return nil, fmt.Errorf("missing `%s` column in header", IdColumn)
		}
	}
	return record, nil
}

func (r *headerReader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			return records, nil
		} else if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

func normalizeHeader(header []string) (hasId bool) {
	for i, name := range header {
		header[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if header[i] == IdColumn {
			hasId = true
		}
	}
	return
}
