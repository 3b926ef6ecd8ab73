// Copyright (c) 2025 rdsq
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package dataapi executes one SQL statement through the RDS Data API and
// normalizes the response into a plain tabular Result. The Data API returns
// each cell as a union of typed members; normalization flattens that union
// into ordinary Go values so the renderers never see SDK types.
package dataapi

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata/types"

	"rdsq/cli/internal/errors"
	"rdsq/cli/internal/logging"
	"rdsq/cli/internal/target"
)

// Result is a normalized statement response.
// Columns is nil when the response carried no result-set metadata
// (DDL and write statements). Row values are nil, bool, int64, float64,
// string, []byte or []any.
type Result struct {
	Columns        []string
	Rows           [][]any
	RecordsUpdated int64
}

type statementClient interface {
	ExecuteStatement(ctx context.Context, in *rdsdata.ExecuteStatementInput, optFns ...func(*rdsdata.Options)) (*rdsdata.ExecuteStatementOutput, error)
}

// Executor runs statements against a resolved target.
type Executor struct {
	client statementClient
}

// New creates an Executor backed by a real Data API client.
func New(cfg aws.Config) *Executor {
	return &Executor{client: rdsdata.NewFromConfig(cfg)}
}

// Execute sends the target's SQL and normalizes the response. Decimals come
// back as strings so no precision is lost in transit.
func (e *Executor) Execute(ctx context.Context, t *target.Target) (*Result, error) {
	in := &rdsdata.ExecuteStatementInput{
		ResourceArn:           aws.String(t.ClusterARN),
		SecretArn:             aws.String(t.SecretARN),
		Sql:                   aws.String(t.SQL),
		IncludeResultMetadata: true,
		ResultSetOptions: &types.ResultSetOptions{
			DecimalReturnType: types.DecimalReturnTypeString,
		},
	}
	if t.Database != "" {
		in.Database = aws.String(t.Database)
	}

	logging.Debugf("executing statement on cluster %s as %s", t.ClusterID, t.UserID)
	out, err := e.client.ExecuteStatement(ctx, in)
	if err != nil {
		return nil, errors.Wrap(errors.StatementExecution, "Failed to execute statement", err)
	}
	return normalize(out), nil
}

func normalize(out *rdsdata.ExecuteStatementOutput) *Result {
	res := &Result{RecordsUpdated: out.NumberOfRecordsUpdated}
	if out.ColumnMetadata != nil {
		res.Columns = make([]string, len(out.ColumnMetadata))
		for i, col := range out.ColumnMetadata {
			res.Columns[i] = columnName(col)
		}
	}
	for _, record := range out.Records {
		row := make([]any, len(record))
		for i, field := range record {
			row[i] = fieldValue(field)
		}
		res.Rows = append(res.Rows, row)
	}
	return res
}

// columnName prefers the label over the name; either may be absent.
func columnName(col types.ColumnMetadata) string {
	if label := aws.ToString(col.Label); label != "" {
		return label
	}
	if name := aws.ToString(col.Name); name != "" {
		return name
	}
	return "?"
}

// fieldValue flattens one Field union member into a plain Go value.
func fieldValue(field types.Field) any {
	switch f := field.(type) {
	case *types.FieldMemberIsNull:
		return nil
	case *types.FieldMemberBooleanValue:
		return f.Value
	case *types.FieldMemberLongValue:
		return f.Value
	case *types.FieldMemberDoubleValue:
		return f.Value
	case *types.FieldMemberStringValue:
		return f.Value
	case *types.FieldMemberBlobValue:
		return f.Value
	case *types.FieldMemberArrayValue:
		return arrayValue(f.Value)
	default:
		return nil
	}
}

// arrayValue flattens the nested array union, recursing for arrays of arrays.
func arrayValue(v types.ArrayValue) []any {
	switch a := v.(type) {
	case *types.ArrayValueMemberStringValues:
		return toAnySlice(a.Value)
	case *types.ArrayValueMemberLongValues:
		return toAnySlice(a.Value)
	case *types.ArrayValueMemberDoubleValues:
		return toAnySlice(a.Value)
	case *types.ArrayValueMemberBooleanValues:
		return toAnySlice(a.Value)
	case *types.ArrayValueMemberArrayValues:
		out := make([]any, len(a.Value))
		for i, inner := range a.Value {
			out[i] = arrayValue(inner)
		}
		return out
	default:
		return nil
	}
}

func toAnySlice[T any](vals []T) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
