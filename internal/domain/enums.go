package domain

// ReportType tells whether a report describes something lost or something found.
type ReportType string

const (
	ReportTypeLost  ReportType = "LOST"
	ReportTypeFound ReportType = "FOUND"
)

func (t ReportType) String() string { return string(t) }

func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeLost, ReportTypeFound:
		return true
	}
	return false
}

// Opposite returns the report type a report of type t is matched against.
func (t ReportType) Opposite() ReportType {
	if t == ReportTypeLost {
		return ReportTypeFound
	}
	return ReportTypeLost
}

// Category is the kind of entity a report is about.
type Category string

const (
	CategoryPeople             Category = "PEOPLE"
	CategoryPets               Category = "PETS"
	CategoryPersonalBelongings Category = "PERSONAL_BELONGINGS"
)

// AllCategories lists every supported category in a stable order.
var AllCategories = []Category{CategoryPeople, CategoryPets, CategoryPersonalBelongings}

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryPeople, CategoryPets, CategoryPersonalBelongings:
		return true
	}
	return false
}

// ReportStatus is the lifecycle state of a report.
type ReportStatus string

const (
	ReportStatusActive  ReportStatus = "ACTIVE"
	ReportStatusMatched ReportStatus = "MATCHED"
	ReportStatusClosed  ReportStatus = "CLOSED"
)

func (s ReportStatus) String() string { return string(s) }

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusActive, ReportStatusMatched, ReportStatusClosed:
		return true
	}
	return false
}

// MatchStatus is the lifecycle state of a promoted match.
type MatchStatus string

const (
	MatchStatusPending   MatchStatus = "PENDING"
	MatchStatusConfirmed MatchStatus = "CONFIRMED"
	MatchStatusRejected  MatchStatus = "REJECTED"
	MatchStatusResolved  MatchStatus = "RESOLVED"
)

func (s MatchStatus) String() string { return string(s) }

func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusPending, MatchStatusConfirmed, MatchStatusRejected, MatchStatusResolved:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s MatchStatus) IsTerminal() bool {
	return s == MatchStatusRejected || s == MatchStatusResolved
}

// CanTransitionTo reports whether a match in state s may move to next.
//
//	PENDING   -> CONFIRMED | REJECTED
//	CONFIRMED -> RESOLVED
func (s MatchStatus) CanTransitionTo(next MatchStatus) bool {
	switch s {
	case MatchStatusPending:
		return next == MatchStatusConfirmed || next == MatchStatusRejected
	case MatchStatusConfirmed:
		return next == MatchStatusResolved
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeReport EntityType = "REPORT"
	EntityTypeMatch  EntityType = "MATCH"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	return e == EntityTypeReport || e == EntityTypeMatch
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}
