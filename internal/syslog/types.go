package syslog

import "loglib/pkg/level"

type LogSeverity struct {
	SeverityToCode map[string]uint16
	CodeToSeverity map[uint16]string
	CodeToLevel    map[uint16]level.Level
}
