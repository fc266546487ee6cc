package common

import "errors"

// Sentinel errors returned by the core services. Callers classify with
// errors.Is; wrapped variants carry the failing identifiers.
var (
	// ErrValidation covers malformed input rejected before any store access.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound covers a referenced video or user that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyShared means the caller already has an original share of
	// this external video.
	ErrAlreadyShared = errors.New("video already shared")

	// ErrAlreadyReposted means the caller already has a repost of this
	// external video.
	ErrAlreadyReposted = errors.New("video already reposted")

	// ErrSelfRepost means the resolved original sharer is the caller.
	ErrSelfRepost = errors.New("cannot repost own video")

	// ErrNoEligibleOriginal means no other user holds an original share of
	// the referenced external video, so there is nobody to credit.
	ErrNoEligibleOriginal = errors.New("no eligible original share to credit")
)

// IsConflict reports whether err is one of the duplicate-share conditions.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyShared) || errors.Is(err, ErrAlreadyReposted)
}
