package certificate

import "errors"

// Issuance failures. Concurrent double-issuance is not represented here: the
// losing request recovers internally by returning the winning record.
var (
	// ErrEnrollmentNotFound means the enrollment id does not exist.
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	// ErrCourseNotCompleted means the enrollment exists but is not in the
	// completed state, so no certificate may be issued.
	ErrCourseNotCompleted = errors.New("course not completed yet")

	// ErrAllocator means the certificate-number allocator failed.
	ErrAllocator = errors.New("failed to allocate certificate number")

	// ErrRender means the certificate document could not be rendered from
	// the enrollment's joined records.
	ErrRender = errors.New("failed to render certificate document")

	// ErrStorage means the rendered document could not be written to object
	// storage (including an unexpected existing object at the target key).
	ErrStorage = errors.New("failed to store certificate document")

	// ErrPersistence means the certificate record insert failed. An insert
	// failure after a successful storage write leaves an orphaned document
	// behind; see the sweep in utils.
	ErrPersistence = errors.New("failed to save certificate record")
)
