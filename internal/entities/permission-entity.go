package entities

import "github.com/aarondl/null/v8"

type Permission struct {
	ID          uint64      `db:"id"`
	Name        string      `db:"name"`
	Description null.String `db:"description"`
}
