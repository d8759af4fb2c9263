package services

import (
	"context"
	"fmt"
	"house-engine/internal/domain"
	"house-engine/internal/ports"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Upper bound on concurrent relocations in RelocateMany.
const relocateWorkers = 5

type RelocationRequest struct {
	Instant time.Time
	Target  domain.GeographicCoordinate
	Label   string
	Mode    domain.RelocationMode
	System  domain.HouseSystemKind
}

// RelocationOutcome is what Relocate returns instead of an error.
// On failure Chart is the input chart, Applied is false and Failure is set
// for the caller to log.
type RelocationOutcome struct {
	Chart   domain.Chart
	Applied bool
	Failure error
}

// Relocator recomputes houses and angles for a new location at the original
// instant and merges them into a copy of the chart.
type Relocator struct {
	Houses ports.HouseCalculator
}

func NewRelocator(houses ports.HouseCalculator) *Relocator {
	return &Relocator{Houses: houses}
}

func (r *Relocator) calculator() ports.HouseCalculator {
	if r == nil || r.Houses == nil {
		return Calculator{}
	}
	return r.Houses
}

// Relocate is additive-or-nothing: it returns either a new chart carrying the
// relocation patch or the original chart untouched. Errors and panics from
// the house pipeline are recovered here and never propagate.
func (r *Relocator) Relocate(chart domain.Chart, req RelocationRequest) (out RelocationOutcome) {
	out = RelocationOutcome{Chart: chart}

	// Raw or zero-value modes resolve the same way CLI tokens do.
	req.Mode = NormalizeRelocationMode(string(req.Mode), domain.RelocationBirthplace)
	if !RelocationActive(req.Mode) {
		return out
	}

	defer func() {
		if p := recover(); p != nil {
			out = RelocationOutcome{
				Chart:   chart,
				Failure: fmt.Errorf("relocate chart (mode=%s): recovered panic: %v", req.Mode, p),
			}
		}
	}()

	patch, err := r.patch(req)
	if err != nil {
		out.Failure = fmt.Errorf("relocate chart (mode=%s): %w", req.Mode, err)
		return out
	}

	return RelocationOutcome{
		Chart:   chart.WithRelocation(patch),
		Applied: true,
	}
}

func (r *Relocator) patch(req RelocationRequest) (domain.RelocatedChartPatch, error) {
	if err := req.Target.Validate(); err != nil {
		return domain.RelocatedChartPatch{}, err
	}

	// Same instant, different place.
	res, err := r.calculator().CalculateHouses(req.Instant, req.Target, req.System)
	if err != nil {
		return domain.RelocatedChartPatch{}, err
	}
	if err := res.CheckFinite(); err != nil {
		return domain.RelocatedChartPatch{}, err
	}

	label := strings.TrimSpace(req.Label)

	return domain.RelocatedChartPatch{
		Applied:     true,
		City:        label,
		Disclosure:  RelocationDisclosure(req.Mode, label),
		Mode:        req.Mode,
		Coordinate:  req.Target,
		HouseSystem: res.System,
		Houses:      res.Cusps,
		Angles:      res.Angles,
	}, nil
}

// RelocateMany relocates one chart to several targets concurrently.
// Outcomes are returned in request order. The only error is context
// cancellation; per-target failures live in each outcome.
func (r *Relocator) RelocateMany(
	ctx context.Context,
	chart domain.Chart,
	reqs []RelocationRequest,
) ([]RelocationOutcome, error) {
	out := make([]RelocationOutcome, len(reqs))
	if len(reqs) == 0 {
		return out, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(relocateWorkers)

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = r.Relocate(chart, req)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("relocate many: %w", err)
	}

	return out, nil
}
