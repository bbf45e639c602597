package models

// GuardStatus defines the employment status of a guard
type GuardStatus string

const (
	GuardStatusActive    GuardStatus = "active"
	GuardStatusInactive  GuardStatus = "inactive"
	GuardStatusSuspended GuardStatus = "suspended"
)

// IsValid checks if the GuardStatus is valid
func (s GuardStatus) IsValid() bool {
	switch s {
	case GuardStatusActive, GuardStatusInactive, GuardStatusSuspended:
		return true
	}
	return false
}

// CheckpointKind defines the type of a checkpoint post
type CheckpointKind string

const (
	CheckpointKindGate      CheckpointKind = "gate"
	CheckpointKindReception CheckpointKind = "reception"
	CheckpointKindPatrol    CheckpointKind = "patrol"
	CheckpointKindRemote    CheckpointKind = "remote"
)

// IsValid checks if the CheckpointKind is valid
func (k CheckpointKind) IsValid() bool {
	switch k {
	case CheckpointKindGate, CheckpointKindReception, CheckpointKindPatrol, CheckpointKindRemote:
		return true
	}
	return false
}
