// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package simulator

import (
	"database/sql"
	"time"

	"github.com/foundriesio/sensor-validator/storage"
)

type (
	// Convenience aliases for importing modules
	DbHandle = storage.DbHandle

	SensorInformation = storage.SensorInformation
	Task              = storage.Task
)

var (
	NewDb = storage.NewDb

	IsDbError                 = storage.IsDbError
	ErrDbConstraintPrimaryKey = storage.ErrDbConstraintPrimaryKey
)

// Storage keeps the fleet and the tasks of a simulated sensor management API.
type Storage struct {
	db *DbHandle

	stmtSensorGet    stmtSensorGet
	stmtSensorUpsert stmtSensorUpsert
	stmtTaskCreate   stmtTaskCreate
	stmtTaskList     stmtTaskList
}

func NewStorage(db *storage.DbHandle) (*Storage, error) {
	handle := Storage{db: db}
	if err := db.InitStmt(
		&handle.stmtSensorGet,
		&handle.stmtSensorUpsert,
		&handle.stmtTaskCreate,
		&handle.stmtTaskList,
	); err != nil {
		return nil, err
	}
	return &handle, nil
}

// SensorGet returns nil when the sensor is not part of the fleet.
func (s Storage) SensorGet(id int64) (*SensorInformation, error) {
	info := SensorInformation{Serial: id}
	if err := s.stmtSensorGet.run(id, &info); err != nil {
		if err == sql.ErrNoRows {
			err = nil
		}
		return nil, err
	}
	return &info, nil
}

func (s Storage) SensorUpsert(info SensorInformation) error {
	return s.stmtSensorUpsert.run(info, time.Now().Unix())
}

func (s Storage) TaskCreate(task Task) (Task, error) {
	task.CreatedAt = time.Now().Unix()
	return task, s.stmtTaskCreate.run(task)
}

// TaskList returns the tasks in the order they were created.
// A sensorId of 0 lists the tasks of all sensors.
func (s Storage) TaskList(sensorId int64) ([]Task, error) {
	return s.stmtTaskList.run(sensorId)
}

type stmtSensorGet storage.DbStmt

func (s *stmtSensorGet) Init(db storage.DbHandle) (err error) {
	s.Stmt, err = db.Prepare("SensorGet", `
		SELECT firmware, configuration
		FROM sensors
		WHERE id = ?`,
	)
	return
}

func (s *stmtSensorGet) run(id int64, info *SensorInformation) error {
	var firmware, configuration sql.NullString
	if err := s.Stmt.QueryRow(id).Scan(&firmware, &configuration); err != nil {
		return err
	}
	info.CurrentFirmware = nullable(firmware)
	info.CurrentConfiguration = nullable(configuration)
	return nil
}

type stmtSensorUpsert storage.DbStmt

func (s *stmtSensorUpsert) Init(db storage.DbHandle) (err error) {
	s.Stmt, err = db.Prepare("SensorUpsert", `
		INSERT INTO sensors(id, firmware, configuration, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE
		SET firmware=excluded.firmware, configuration=excluded.configuration, updated_at=excluded.updated_at`,
	)
	return
}

func (s *stmtSensorUpsert) run(info SensorInformation, updatedAt int64) error {
	_, err := s.Stmt.Exec(info.Serial, info.CurrentFirmware, info.CurrentConfiguration, updatedAt)
	return err
}

type stmtTaskCreate storage.DbStmt

func (s *stmtTaskCreate) Init(db storage.DbHandle) (err error) {
	s.Stmt, err = db.Prepare("TaskCreate", `
		INSERT INTO tasks(id, sensor_id, type, configuration_filename, created_at)
		VALUES (?, ?, ?, ?, ?)`,
	)
	return
}

func (s *stmtTaskCreate) run(task Task) error {
	_, err := s.Stmt.Exec(task.Id, task.SensorId, task.Type, task.ConfigurationFilename, task.CreatedAt)
	return err
}

type stmtTaskList storage.DbStmt

func (s *stmtTaskList) Init(db storage.DbHandle) (err error) {
	s.Stmt, err = db.Prepare("TaskList", `
		SELECT id, sensor_id, type, configuration_filename, created_at
		FROM tasks
		WHERE ? = 0 OR sensor_id = ?
		ORDER BY created_at, rowid`,
	)
	return
}

func (s *stmtTaskList) run(sensorId int64) ([]Task, error) {
	rows, err := s.Stmt.Query(sensorId, sensorId)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	tasks := []Task{}
	for rows.Next() {
		var task Task
		var filename sql.NullString
		if err := rows.Scan(&task.Id, &task.SensorId, &task.Type, &filename, &task.CreatedAt); err != nil {
			return nil, err
		}
		task.ConfigurationFilename = nullable(filename)
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
