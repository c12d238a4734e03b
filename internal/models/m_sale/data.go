package m_sale

import (
	"cloud.google.com/go/spanner"
)

// InsertMutation builds the header insert. values are keyed by the column
// constants in fields.go.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertMap(TableName, values)
}
