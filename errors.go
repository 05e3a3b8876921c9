package main

import "errors"

var (
	ErrConfiguration   = errors.New("configuration error")
	ErrDatasetNotFound = errors.New("dataset not found")
	ErrLoad            = errors.New("load error")
	ErrQueryExecution  = errors.New("query execution error")
)
