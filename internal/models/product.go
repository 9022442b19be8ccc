package models

import "time"

// ProductRecord is one listing extracted from a monitored page.
// Price, Availability and Link are optional raw display values; Title is the
// identity of the record across cycles (compared case-insensitively).
type ProductRecord struct {
	Title        string
	Price        string
	Availability string
	Link         string
}

// ChangeOutcome classifies a single scrape cycle for a page.
type ChangeOutcome string

const (
	OutcomeInitial   ChangeOutcome = "initial"
	OutcomeUnchanged ChangeOutcome = "unchanged"
	OutcomeChanged   ChangeOutcome = "changed"
)

// PageSnapshot is the in-memory record of the last successful scrape of a
// page. It is replaced wholesale after every successful scrape and never
// persisted; a restart re-baselines every page.
type PageSnapshot struct {
	URL             string
	Fingerprint     string
	FingerprintText string
	Products        []ProductRecord
	FetchedAt       time.Time
}
