package model

import (
	"errors"
	"fmt"
)

var (
	ErrDataLoad = errors.New("data load failed")
	ErrGeometry = errors.New("unusable route geometry")
	ErrNoMatch  = errors.New("no matching stop")
	ErrNoPath   = errors.New("no route connects these stops")
)

// DataLoadError is fatal to initialization: the stop or route collection is
// missing or malformed.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

func (e *DataLoadError) Is(target error) bool { return target == ErrDataLoad }

// GeometryError describes a single route that was skipped during a build.
type GeometryError struct {
	RouteID string
	Route   string
	Reason  string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("route %s (%s): %s", e.RouteID, e.Route, e.Reason)
}

func (e *GeometryError) Is(target error) bool { return target == ErrGeometry }

// NoMatchError reports a name query that resolved to no graph node.
// Role is "start" or "end".
type NoMatchError struct {
	Role  string
	Query string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no stop matches %q", e.Query)
}

func (e *NoMatchError) Is(target error) bool { return target == ErrNoMatch }
