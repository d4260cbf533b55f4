package report

import (
	"context"
	"fmt"
	"time"

	"github.com/cosroom/cosroom/internal/config"
	"github.com/cosroom/cosroom/internal/utils"
	"github.com/cosroom/cosroom/pkg/availability"
	"github.com/cosroom/cosroom/pkg/calendar"
	"github.com/cosroom/cosroom/pkg/directory"
	"github.com/cosroom/cosroom/pkg/next_event"
	"github.com/cosroom/cosroom/pkg/pairing"
	log "github.com/sirupsen/logrus"
)

// lookaheadHorizon is how far ahead the free/busy query looks.
const lookaheadHorizon = 24 * time.Hour

type Service interface {
	Generate(ctx context.Context) (Report, error)
}

type ServiceImpl struct {
	provider     calendar.DataSourceProvider
	clock        utils.Clock
	knownRooms   directory.RoomNames
	orgCalendar  string
	pairingQuery string
	accountIndex int
}

func NewService(provider calendar.DataSourceProvider, clock utils.Clock, cfg config.Rooms) *ServiceImpl {
	return &ServiceImpl{
		provider:     provider,
		clock:        clock,
		knownRooms:   directory.NewRoomNames(cfg.KnownNames),
		orgCalendar:  cfg.OrganizationCalendar,
		pairingQuery: cfg.PairingQuery,
		accountIndex: cfg.AccountIndex,
	}
}

// Generate computes one availability report. The clock is read exactly once;
// every sub-computation sees the same instant, so the report is internally
// consistent. Any sub-computation failure fails the whole report.
func (s *ServiceImpl) Generate(ctx context.Context) (Report, error) {
	now := s.clock.Now()

	ds, err := s.provider.DataSource(ctx)
	if err != nil {
		return Report{}, err
	}

	resolver := directory.NewResolver(ds)
	calendars, err := resolver.AllCalendars(ctx)
	if err != nil {
		return Report{}, err
	}

	primary, err := directory.PrimaryCalendar(calendars)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Free:  []availability.RoomStatus{},
		Busy:  []availability.RoomStatus{},
		Pairs: map[string][]calendar.Event{},
		Email: primary.ID,
	}

	rooms := directory.RoomCalendars(calendars, s.knownRooms)
	if len(rooms) == 0 {
		// Nothing to query against; an empty report is still a valid one.
		log.Warn("no room calendars visible to this account")
		return report, nil
	}

	roomIDs := make([]string, 0, len(rooms))
	for _, room := range rooms {
		roomIDs = append(roomIDs, room.ID)
	}
	busyByID, err := ds.QueryFreeBusy(ctx, roomIDs, now, now.Add(lookaheadHorizon))
	if err != nil {
		return Report{}, fmt.Errorf("free/busy query failed: %w", err)
	}
	report.Free, report.Busy = availability.Classify(rooms, busyByID, now, s.accountIndex)

	primaryEvents, err := ds.ListEvents(ctx, primary.ID, calendar.EventQuery{TimeMin: now})
	if err != nil {
		return Report{}, fmt.Errorf("unable to list primary calendar events: %w", err)
	}
	report.NextEvent = next_event.Find(primaryEvents, primary.ID, now)

	people := directory.PersonCalendars(calendars, s.orgCalendar)
	pairs, err := pairing.NewService(ds, s.pairingQuery).AvailablePairs(ctx, people, now)
	if err != nil {
		return Report{}, err
	}
	report.Pairs = pairs

	log.Debugf("report: %d free, %d busy, %d people pairing", len(report.Free), len(report.Busy), len(report.Pairs))
	return report, nil
}
