package sql

import "embed"

// Migrations holds the embedded DDL, applied in filename order.
//
//go:embed migrations
var Migrations embed.FS

//go:embed queries/unit_value_cents.sql
var UnitValueCents string
