package model

import "fmt"

// EventStatus is the lifecycle bucket of an event. Any status may move to any other.
type EventStatus string

const (
	EventStatusPlanning   EventStatus = "Planning"
	EventStatusInProgress EventStatus = "In Progress"
	EventStatusCompleted  EventStatus = "Completed"
	EventStatusCancelled  EventStatus = "Cancelled"
)

// EventStatuses lists the dashboard buckets in display order.
var EventStatuses = []EventStatus{
	EventStatusPlanning,
	EventStatusInProgress,
	EventStatusCompleted,
	EventStatusCancelled,
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "To Do"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

var TaskStatuses = []TaskStatus{TaskStatusToDo, TaskStatusInProgress, TaskStatusCompleted}

type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "Pending"
	RSVPConfirmed RSVPStatus = "Confirmed"
	RSVPDeclined  RSVPStatus = "Declined"
)

var RSVPStatuses = []RSVPStatus{RSVPPending, RSVPConfirmed, RSVPDeclined}

// UnknownValueError is returned by the Parse functions for values outside
// the closed set.
type UnknownValueError struct {
	Kind  string
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("%q is not a valid %s", e.Value, e.Kind)
}

func ParseEventStatus(s string) (EventStatus, error) {
	for _, v := range EventStatuses {
		if string(v) == s {
			return v, nil
		}
	}
	return "", &UnknownValueError{Kind: "event status", Value: s}
}

func ParsePriority(s string) (Priority, error) {
	for _, v := range Priorities {
		if string(v) == s {
			return v, nil
		}
	}
	return "", &UnknownValueError{Kind: "priority", Value: s}
}

func ParseTaskStatus(s string) (TaskStatus, error) {
	for _, v := range TaskStatuses {
		if string(v) == s {
			return v, nil
		}
	}
	return "", &UnknownValueError{Kind: "task status", Value: s}
}

func ParseRSVPStatus(s string) (RSVPStatus, error) {
	for _, v := range RSVPStatuses {
		if string(v) == s {
			return v, nil
		}
	}
	return "", &UnknownValueError{Kind: "RSVP status", Value: s}
}
