package organize

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/handiism/picturedb/internal/config"
	"github.com/handiism/picturedb/internal/metadata"
	"github.com/handiism/picturedb/internal/model"
	"golang.org/x/sync/errgroup"
)

// OrderBy selects the order Order sorts images into.
type OrderBy int

const (
	// ByNumber sorts by the current number, numerically where possible.
	ByNumber OrderBy = iota
	// ByPath sorts by the path the image was opened from.
	ByPath
	// ByTaken sorts by EXIF capture time. Images without one go last.
	ByTaken
)

func (b OrderBy) String() string {
	switch b {
	case ByNumber:
		return config.OrderNumber
	case ByPath:
		return config.OrderPath
	case ByTaken:
		return config.OrderTaken
	default:
		return fmt.Sprintf("order(%d)", int(b))
	}
}

// ParseOrder converts a settings or command line value to an OrderBy.
func ParseOrder(s string) (OrderBy, error) {
	switch s {
	case config.OrderNumber, "":
		return ByNumber, nil
	case config.OrderPath:
		return ByPath, nil
	case config.OrderTaken:
		return ByTaken, nil
	default:
		return ByNumber, fmt.Errorf("unknown order %q (want number, path or taken)", s)
	}
}

// Order sorts images in place, usually right before model.Renumber.
//
// ByTaken reads the capture times with up to Settings.CaptureTimeWorkers
// goroutines. The reads do not modify the images. Only cancellation of ctx
// is returned as an error; unreadable capture times are reported as
// warnings.
func (o *Organizer) Order(ctx context.Context, images []*model.Image, by OrderBy) error {
	switch by {
	case ByNumber:
		slices.SortStableFunc(images, func(a, b *model.Image) int {
			if c := compareNumbers(a.Number(), b.Number()); c != 0 {
				return c
			}
			return cmp.Compare(a.OriginalPath(), b.OriginalPath())
		})
		return nil
	case ByPath:
		slices.SortStableFunc(images, func(a, b *model.Image) int {
			return cmp.Compare(a.OriginalPath(), b.OriginalPath())
		})
		return nil
	case ByTaken:
		return o.orderByTaken(ctx, images)
	default:
		return fmt.Errorf("unknown order %v", by)
	}
}

func (o *Organizer) orderByTaken(ctx context.Context, images []*model.Image) error {
	taken := make(map[*model.Image]time.Time, len(images))
	times := make([]time.Time, len(images))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(o.settings.CaptureTimeWorkers, 1))

	for i, img := range images {
		i, img := i, img
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := metadata.CaptureTime(img.DiskPath())
			if err != nil {
				o.logger.Debug("no capture time", "path", img.DiskPath(), "err", err)
				return nil
			}
			times[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, img := range images {
		if times[i].IsZero() {
			o.progress(ProgressEvent{
				Message: fmt.Sprintf("No capture time in %s, sorting it last", img.DiskPath()),
				Level:   LevelWarning,
				Path:    img.DiskPath(),
			})
			continue
		}
		taken[img] = times[i]
	}

	slices.SortStableFunc(images, func(a, b *model.Image) int {
		ta, okA := taken[a]
		tb, okB := taken[b]
		switch {
		case okA && okB:
			if c := ta.Compare(tb); c != 0 {
				return c
			}
		case okA:
			return -1
		case okB:
			return 1
		}
		return cmp.Compare(a.OriginalPath(), b.OriginalPath())
	})
	return nil
}

// compareNumbers orders numeric tokens by value and puts them before
// non-numeric ones, which are compared as strings.
func compareNumbers(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return cmp.Compare(na, nb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}
