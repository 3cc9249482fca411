package dictionary

import "errors"

var (
	// ErrCounterMissing is returned when a count mutation finds no count
	// document. A missing counter indicates a provisioning defect, not a
	// transient condition, so it is never retried here. Provision with
	// [Dictionary.ReconcileDefinitionCount].
	ErrCounterMissing = errors.New("dictionary: definition count document not provisioned")

	// ErrSingletonViolated reports that the definition-of-the-day slot holds
	// more than one document. Reads recover by taking the first in scan
	// order; the next SetDefinitionOfTheDay prunes the slot back to one.
	ErrSingletonViolated = errors.New("dictionary: definition of the day slot holds multiple documents")
)
