// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-sqlite3"
)

var (
	ErrDbConstraintUnique     = sqlite3.ErrConstraintUnique
	ErrDbConstraintPrimaryKey = sqlite3.ErrConstraintPrimaryKey
)

type DbHandle struct {
	db *sql.DB
}

func NewDb(dbfile string) (*DbHandle, error) {
	var newDb bool
	if _, err := os.Stat(dbfile); err != nil {
		newDb = errors.Is(err, os.ErrNotExist)
	}
	db, err := sql.Open("sqlite3", dbfile)
	if err != nil {
		return nil, err
	}
	if newDb {
		if err := createTables(db); err != nil {
			return nil, err
		}
	}
	return &DbHandle{db: db}, nil
}

func (d DbHandle) Close() error {
	return d.db.Close()
}

func (d DbHandle) Prepare(name, query string) (stmt *sql.Stmt, err error) {
	if stmt, err = d.db.Prepare(query); err != nil {
		err = fmt.Errorf("unable to prepare '%s' statement: %w", name, err)
	}
	return
}

func (d DbHandle) InitStmt(stmt ...DbStmtInit) (err error) {
	for _, s := range stmt {
		if err = s.Init(d); err != nil {
			break
		}
	}
	return
}

// IsDbError tells if err is a sqlite error with the given extended code.
func IsDbError(err error, code sqlite3.ErrNoExtended) bool {
	var sqlErr sqlite3.Error
	return errors.As(err, &sqlErr) && sqlErr.ExtendedCode == code
}

func createTables(db *sql.DB) error {
	sqlStmt := `
		CREATE TABLE sensors (
			id            INTEGER NOT NULL PRIMARY KEY,
			firmware      TEXT NULL,
			configuration TEXT NULL,
			updated_at    INT DEFAULT 0
		);

		CREATE TABLE tasks (
			id                     VARCHAR(36) NOT NULL PRIMARY KEY,
			sensor_id              INTEGER NOT NULL,
			type                   VARCHAR(32) NOT NULL,
			configuration_filename TEXT NULL,
			created_at             INT DEFAULT 0
		);

		CREATE INDEX tasks_sensor_id ON tasks(sensor_id);
	`
	if _, err := db.Exec(sqlStmt); err != nil {
		return fmt.Errorf("unable to create sensors db: %w", err)
	}
	return nil
}

type DbStmt struct {
	Stmt *sql.Stmt
}

type DbStmtInit interface {
	Init(db DbHandle) error
}
