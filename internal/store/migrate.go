package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	quizEventsTable = "quiz_events"
	sequenceTable   = "global_sequence"
)

// sequenceRowID is the only row of global_sequence.
const sequenceRowID = 1

// Column names of quiz_events.
const (
	colID         = "id"
	colSequence   = "sequence"
	colTimestamp  = "timestamp"
	colSessionID  = "session_id"
	colName       = "name"
	colResultType = "result_type"
	colNextVal    = "next_val"
)

var (
	quizEventsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colSequence, Type: field.TypeInt64, Unique: true},
		{Name: colTimestamp, Type: field.TypeTime},
		{Name: colSessionID, Type: field.TypeString},
		{Name: colName, Type: field.TypeString},
		{Name: colResultType, Type: field.TypeString, Default: ""},
	}

	quizEvents = &schema.Table{
		Name:       quizEventsTable,
		Columns:    quizEventsColumns,
		PrimaryKey: []*schema.Column{quizEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{quizEventsColumns[1]},
			},
			{
				Name:    "quizevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{quizEventsColumns[2]},
			},
			{
				Name:    "quizevent_name_result_type",
				Unique:  false,
				Columns: []*schema.Column{quizEventsColumns[4], quizEventsColumns[5]},
			},
			{
				Name:    "quizevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{quizEventsColumns[3]},
			},
		},
	}

	sequenceColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt},
		{Name: colNextVal, Type: field.TypeInt64, Default: 1},
	}

	sequence = &schema.Table{
		Name:       sequenceTable,
		Columns:    sequenceColumns,
		PrimaryKey: []*schema.Column{sequenceColumns[0]},
	}

	tables = []*schema.Table{quizEvents, sequence}
)

// migrate creates or updates the event tables.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	return m.Create(ctx, tables...)
}
