// Copyright (c) 2025 rdsq
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dataapi

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata/types"
	"github.com/google/go-cmp/cmp"

	"rdsq/cli/internal/target"
)

type fakeClient struct {
	in  *rdsdata.ExecuteStatementInput
	out *rdsdata.ExecuteStatementOutput
	err error
}

func (f *fakeClient) ExecuteStatement(ctx context.Context, in *rdsdata.ExecuteStatementInput, _ ...func(*rdsdata.Options)) (*rdsdata.ExecuteStatementOutput, error) {
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func testTarget() *target.Target {
	return &target.Target{
		ClusterID:  "demo",
		ClusterARN: "arn:aws:rds:us-east-1:123456789012:cluster:demo",
		UserID:     "read_only",
		SecretARN:  "arn:aws:secretsmanager:us-east-1:123456789012:secret:rds-db-credentials/cluster-DEMO/read_only",
		Region:     "us-east-1",
		SQL:        "select id, name from users",
	}
}

func TestExecuteBuildsRequest(t *testing.T) {
	fake := &fakeClient{out: &rdsdata.ExecuteStatementOutput{}}
	e := &Executor{client: fake}

	tgt := testTarget()
	tgt.Database = "appdb"
	if _, err := e.Execute(context.Background(), tgt); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	in := fake.in
	if aws.ToString(in.ResourceArn) != tgt.ClusterARN {
		t.Errorf("ResourceArn = %q, want %q", aws.ToString(in.ResourceArn), tgt.ClusterARN)
	}
	if aws.ToString(in.SecretArn) != tgt.SecretARN {
		t.Errorf("SecretArn = %q, want %q", aws.ToString(in.SecretArn), tgt.SecretARN)
	}
	if aws.ToString(in.Sql) != tgt.SQL {
		t.Errorf("Sql = %q, want %q", aws.ToString(in.Sql), tgt.SQL)
	}
	if aws.ToString(in.Database) != "appdb" {
		t.Errorf("Database = %q, want %q", aws.ToString(in.Database), "appdb")
	}
	if !in.IncludeResultMetadata {
		t.Error("IncludeResultMetadata not set")
	}
	if in.ResultSetOptions == nil || in.ResultSetOptions.DecimalReturnType != types.DecimalReturnTypeString {
		t.Error("DecimalReturnType != STRING")
	}
}

func TestExecuteOmitsEmptyDatabase(t *testing.T) {
	fake := &fakeClient{out: &rdsdata.ExecuteStatementOutput{}}
	e := &Executor{client: fake}

	if _, err := e.Execute(context.Background(), testTarget()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if fake.in.Database != nil {
		t.Errorf("Database = %q, want unset", aws.ToString(fake.in.Database))
	}
}

func TestExecuteWrapsRemoteFailure(t *testing.T) {
	e := &Executor{client: &fakeClient{err: fmt.Errorf("BadRequestException: syntax error")}}

	_, err := e.Execute(context.Background(), testTarget())
	if err == nil {
		t.Fatal("Execute() expected error")
	}
	want := "Failed to execute statement: BadRequestException: syntax error"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestNormalize(t *testing.T) {
	out := &rdsdata.ExecuteStatementOutput{
		ColumnMetadata: []types.ColumnMetadata{
			{Label: aws.String("id"), Name: aws.String("users_id")},
			{Name: aws.String("name")},
			{},
		},
		Records: [][]types.Field{
			{
				&types.FieldMemberLongValue{Value: 1},
				&types.FieldMemberStringValue{Value: "Bruce"},
				&types.FieldMemberIsNull{Value: true},
			},
			{
				&types.FieldMemberLongValue{Value: 2},
				&types.FieldMemberStringValue{Value: "Selina"},
				&types.FieldMemberDoubleValue{Value: 1.5},
			},
		},
	}

	res := normalize(out)
	if diff := cmp.Diff([]string{"id", "name", "?"}, res.Columns); diff != "" {
		t.Errorf("Columns mismatch (-want +got):\n%s", diff)
	}
	want := [][]any{
		{int64(1), "Bruce", nil},
		{int64(2), "Selina", 1.5},
	}
	if diff := cmp.Diff(want, res.Rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeWriteStatement(t *testing.T) {
	res := normalize(&rdsdata.ExecuteStatementOutput{NumberOfRecordsUpdated: 3})
	if res.Columns != nil {
		t.Errorf("Columns = %v, want nil", res.Columns)
	}
	if res.RecordsUpdated != 3 {
		t.Errorf("RecordsUpdated = %d, want 3", res.RecordsUpdated)
	}
}

func TestFieldValue(t *testing.T) {
	tests := []struct {
		name  string
		field types.Field
		want  any
	}{
		{"null", &types.FieldMemberIsNull{Value: true}, nil},
		{"bool", &types.FieldMemberBooleanValue{Value: true}, true},
		{"long", &types.FieldMemberLongValue{Value: 42}, int64(42)},
		{"double", &types.FieldMemberDoubleValue{Value: 2.5}, 2.5},
		{"string", &types.FieldMemberStringValue{Value: "x"}, "x"},
		{"blob", &types.FieldMemberBlobValue{Value: []byte{0xde, 0xad}}, []byte{0xde, 0xad}},
		{
			"string array",
			&types.FieldMemberArrayValue{Value: &types.ArrayValueMemberStringValues{Value: []string{"a", "b"}}},
			[]any{"a", "b"},
		},
		{
			"nested array",
			&types.FieldMemberArrayValue{Value: &types.ArrayValueMemberArrayValues{
				Value: []types.ArrayValue{&types.ArrayValueMemberLongValues{Value: []int64{1, 2}}},
			}},
			[]any{[]any{int64(1), int64(2)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fieldValue(tt.field)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("fieldValue() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestColumnNameFallback(t *testing.T) {
	if got := columnName(types.ColumnMetadata{Label: aws.String("l"), Name: aws.String("n")}); got != "l" {
		t.Errorf("columnName() = %q, want %q", got, "l")
	}
	if got := columnName(types.ColumnMetadata{Name: aws.String("n")}); got != "n" {
		t.Errorf("columnName() = %q, want %q", got, "n")
	}
	if got := columnName(types.ColumnMetadata{}); got != "?" {
		t.Errorf("columnName() = %q, want %q", got, "?")
	}
}
