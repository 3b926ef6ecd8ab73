// Copyright (c) 2025 rdsq
// Licensed under the MIT License. See LICENSE file in the project root for details.

package render

import (
	"bytes"
	"encoding/json"
	"io"

	"rdsq/cli/internal/dataapi"
)

// record is one result row keyed by column name. A map would lose column
// order and silently drop duplicate column names, so marshaling walks the
// parallel slices instead.
type record struct {
	keys   []string
	values []any
}

func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		var v any
		if i < len(r.values) {
			v = r.values[i]
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSON renders the rows as a compact array of objects, keys in column
// order, values as native JSON types.
func writeJSON(w io.Writer, res *dataapi.Result) error {
	records := make([]record, len(res.Rows))
	for i, row := range res.Rows {
		records[i] = record{keys: res.Columns, values: row}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// envelope is the raw format payload: the normalized response as-is.
type envelope struct {
	RecordsUpdated int64    `json:"numberOfRecordsUpdated"`
	Columns        []string `json:"columns,omitempty"`
	Records        [][]any  `json:"records"`
}

// writeRaw pretty-prints the whole response envelope, update count included.
func writeRaw(w io.Writer, res *dataapi.Result) error {
	env := envelope{
		RecordsUpdated: res.RecordsUpdated,
		Columns:        res.Columns,
		Records:        res.Rows,
	}
	if env.Records == nil {
		env.Records = [][]any{}
	}
	b, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
