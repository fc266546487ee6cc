package video

import (
	"context"
	"fmt"

	"pawshare/internal/common"
	"pawshare/internal/dbmysql"
	"pawshare/internal/metadata"
)

// VideoRef identifies the video a repost targets: either an existing row
// by internal id, or a bare external video id.
type VideoRef struct {
	VideoID    uint
	ExternalID string
}

func (r VideoRef) validate() error {
	if r.VideoID == 0 && !metadata.IsValidVideoID(r.ExternalID) {
		return fmt.Errorf("video reference needs a row id or a well-formed external id: %w", common.ErrValidation)
	}
	return nil
}

// ResolveOriginalSharer decides who a repost by callerID would credit,
// and returns the row the snapshot is taken from.
//
// Attribution is always flattened: a repost of a repost credits the root
// original sharer, never the intermediate reposter. A bare external id
// resolves to the earliest original share by a user other than the
// caller; if nobody else holds one there is no eligible original.
func (s *Service) ResolveOriginalSharer(ctx context.Context, callerID uint, ref VideoRef) (uint, *dbmysql.Video, error) {
	if err := ref.validate(); err != nil {
		return 0, nil, err
	}

	var source *dbmysql.Video
	if ref.VideoID != 0 {
		row, err := s.videos.ByID(ctx, ref.VideoID)
		if err != nil {
			return 0, nil, err
		}
		if row == nil {
			return 0, nil, fmt.Errorf("video %d: %w", ref.VideoID, common.ErrNotFound)
		}
		source = row
	} else {
		row, err := s.videos.EarliestOriginalShare(ctx, ref.ExternalID, callerID)
		if err != nil {
			return 0, nil, err
		}
		if row == nil {
			return 0, nil, fmt.Errorf("external video %s: %w", ref.ExternalID, common.ErrNoEligibleOriginal)
		}
		source = row
	}

	credited := source.SharerUserID
	if source.OriginalSharerUserID != nil {
		credited = *source.OriginalSharerUserID
	}
	if credited == callerID {
		return 0, nil, fmt.Errorf("user %d: %w", callerID, common.ErrSelfRepost)
	}
	return credited, source, nil
}
