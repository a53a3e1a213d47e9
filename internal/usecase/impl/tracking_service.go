package impl

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"sync"
	"time"

	"tracker/config"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/service"
	"tracker/internal/errors"
	"tracker/internal/geo"
	"tracker/internal/usecase"
)

// trackingSession is the state of one live delivery
type trackingSession struct {
	route       *entity.OptimizedRoute
	progress    *entity.DeliveryProgress
	hasFix      bool // a GPS sample or server location has replaced the placeholder
	unsubscribe func()

	ctx    context.Context // bounds best-effort pushes; cancelled on stop
	cancel context.CancelFunc
}

type listenerEntry struct {
	id usecase.ListenerID
	fn usecase.MilestoneListener
}

// pendingMilestone is a log append waiting to be handed to listeners
type pendingMilestone struct {
	milestone entity.DeliveryMilestone
	progress  *entity.DeliveryProgress
	listeners []listenerEntry
}

// trackingService implements usecase.TrackingUsecase.
//
// mu serializes every mutation of the session and the milestone log. Appends
// are queued under mu and handed to listeners under dispatchMu after mu is
// released, so listeners see appends in log order and may call read methods.
type trackingService struct {
	client      service.RouteOptimizationClient
	sensor      service.LocationSensor
	trigger     *NotificationTrigger
	avgSpeedKmh float64
	logger      *slog.Logger
	now         func() time.Time

	mu             sync.Mutex
	state          entity.TrackingState
	session        *trackingSession
	milestones     []entity.DeliveryMilestone
	cancelStart    context.CancelFunc
	listeners      []listenerEntry
	nextListenerID usecase.ListenerID
	pending        []pendingMilestone

	dispatchMu sync.Mutex
}

// NewTrackingService creates the delivery tracking engine
func NewTrackingService(
	client service.RouteOptimizationClient,
	sensor service.LocationSensor,
	trigger *NotificationTrigger,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TrackingUsecase {
	speed := geo.DefaultAvgSpeedKmh
	if cfg.Tracking != nil && cfg.Tracking.AvgSpeedKmh > 0 {
		speed = cfg.Tracking.AvgSpeedKmh
	}

	return newTrackingService(client, sensor, trigger, speed, logger)
}

func newTrackingService(
	client service.RouteOptimizationClient,
	sensor service.LocationSensor,
	trigger *NotificationTrigger,
	avgSpeedKmh float64,
	logger *slog.Logger,
) *trackingService {
	return &trackingService{
		client:      client,
		sensor:      sensor,
		trigger:     trigger,
		avgSpeedKmh: avgSpeedKmh,
		logger:      logger,
		now:         time.Now,
		state:       entity.TrackingStateIdle,
	}
}

// TrackRoute fetches the route by ID and starts tracking it
func (s *trackingService) TrackRoute(ctx context.Context, routeID string) (*entity.DeliveryProgress, error) {
	if _, tracking := s.CurrentDelivery(); tracking {
		return nil, domainerrors.ErrAlreadyTracking
	}

	route, err := s.client.GetRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}

	return s.StartTracking(ctx, route)
}

// StartTracking opens a delivery for route and begins tracking it
func (s *trackingService) StartTracking(ctx context.Context, route *entity.OptimizedRoute) (*entity.DeliveryProgress, error) {
	if route == nil || len(route.Stops) == 0 {
		return nil, domainerrors.ErrTrackingStart.WithDetails("route has no stops")
	}
	if err := route.CheckStopSequence(); err != nil {
		return nil, domainerrors.ErrTrackingStart.WithDetails(err.Error())
	}

	startCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.session != nil || s.cancelStart != nil {
		s.mu.Unlock()

		return nil, domainerrors.ErrAlreadyTracking
	}
	s.cancelStart = cancel
	s.mu.Unlock()

	started, err := s.client.StartDelivery(startCtx, route.RouteID)

	s.mu.Lock()
	s.cancelStart = nil
	if err == nil && startCtx.Err() != nil {
		err = errors.Wrap(startCtx.Err(), "tracking stopped while starting")
	}
	if err != nil {
		s.mu.Unlock()
		s.logger.Error("[Tracking] Failed to start delivery",
			slog.String("route_id", route.RouteID),
			slog.Any("error", err),
		)

		return nil, errors.Join(domainerrors.ErrTrackingStart.WithDetails(err.Error()), err)
	}

	sessionCtx, sessionCancel := context.WithCancel(context.WithoutCancel(ctx))
	sess := &trackingSession{
		route:    route,
		progress: initialProgress(started.DeliveryID, route),
		ctx:      sessionCtx,
		cancel:   sessionCancel,
	}
	s.session = sess
	s.state = entity.TrackingStateTracking
	s.milestones = nil
	s.appendLocked(s.now(), entity.StartedPayload{RouteID: route.RouteID})
	snapshot := sess.progress.Clone()
	s.mu.Unlock()

	s.drain()

	s.logger.Info("[Tracking] Delivery started",
		slog.String("delivery_id", started.DeliveryID),
		slog.String("route_id", route.RouteID),
		slog.Int("total_stops", len(route.Stops)),
	)

	unsubscribe := s.client.Subscribe(entity.EventHandlers{
		OnLocationUpdate:    s.onLocationUpdate,
		OnStopCompleted:     s.onStopCompleted,
		OnDeliveryCompleted: s.onDeliveryCompleted,
	})

	s.mu.Lock()
	if s.session != sess {
		// stopped while subscribing
		s.mu.Unlock()
		unsubscribe()

		return snapshot, nil
	}
	sess.unsubscribe = unsubscribe
	s.mu.Unlock()

	if sessionCtx.Err() != nil {
		return snapshot, nil
	}

	if err := s.client.JoinDelivery(sessionCtx, started.DeliveryID); err != nil {
		s.logger.Warn("[Tracking] Failed to join delivery channel",
			slog.String("delivery_id", started.DeliveryID),
			slog.Any("error", err),
		)
	}

	s.mu.Lock()
	ended := s.session != sess
	s.mu.Unlock()
	if ended {
		// stopped while joining; StopTracking's leave may have run first
		s.leave(context.WithoutCancel(ctx), started.DeliveryID)

		return snapshot, nil
	}

	if err := s.sensor.Start(sessionCtx, s.onSample); err != nil {
		s.logger.Warn("[Tracking] Location sensor unavailable, relying on server updates",
			slog.Any("error", err),
		)
	}

	return snapshot, nil
}

// StopTracking ends the live session. Safe to call when idle
func (s *trackingService) StopTracking(ctx context.Context) {
	s.mu.Lock()
	if s.cancelStart != nil {
		s.cancelStart()
	}
	sess := s.endSessionLocked(entity.TrackingStateStopped)
	s.mu.Unlock()

	if sess == nil {
		return
	}

	s.leave(ctx, sess.progress.DeliveryID)
	s.logger.Info("[Tracking] Tracking stopped", slog.String("delivery_id", sess.progress.DeliveryID))
}

// endSessionLocked unsubscribes and discards the live session. Must hold mu.
func (s *trackingService) endSessionLocked(final entity.TrackingState) *trackingSession {
	sess := s.session
	if sess == nil {
		return nil
	}

	if sess.unsubscribe != nil {
		sess.unsubscribe()
	}
	s.sensor.Stop()
	sess.cancel()

	s.session = nil
	s.state = final

	return sess
}

func (s *trackingService) leave(ctx context.Context, deliveryID string) {
	if err := s.client.LeaveDelivery(ctx, deliveryID); err != nil {
		s.logger.Warn("[Tracking] Failed to leave delivery channel",
			slog.String("delivery_id", deliveryID),
			slog.Any("error", err),
		)
	}
}

// CompleteStop forwards a stop completion; the confirming event advances state
func (s *trackingService) CompleteStop(ctx context.Context, stopIndex int) error {
	s.mu.Lock()
	sess := s.session
	if sess == nil {
		s.mu.Unlock()

		return domainerrors.ErrNotTracking
	}
	total := sess.progress.TotalStops
	deliveryID := sess.progress.DeliveryID
	s.mu.Unlock()

	if stopIndex < 0 || stopIndex >= total {
		return domainerrors.ErrValidation.WithDetails("stop index out of range")
	}

	return s.client.CompleteStop(ctx, deliveryID, stopIndex)
}

// CompleteDelivery forwards a delivery completion; the confirming event ends the session
func (s *trackingService) CompleteDelivery(ctx context.Context) error {
	s.mu.Lock()
	sess := s.session
	s.mu.Unlock()

	if sess == nil {
		return domainerrors.ErrNotTracking
	}

	return s.client.CompleteDelivery(ctx, sess.progress.DeliveryID)
}

func (s *trackingService) CurrentDelivery() (*entity.DeliveryProgress, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, false
	}

	return s.session.progress.Clone(), true
}

func (s *trackingService) Milestones() []entity.DeliveryMilestone {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.milestones)
}

func (s *trackingService) State() entity.TrackingState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *trackingService) AddMilestoneListener(fn usecase.MilestoneListener) usecase.ListenerID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextListenerID++
	id := s.nextListenerID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})

	return id
}

func (s *trackingService) RemoveMilestoneListener(id usecase.ListenerID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = slices.DeleteFunc(slices.Clone(s.listeners), func(l listenerEntry) bool {
		return l.id == id
	})
}

// onSample handles a device GPS sample
func (s *trackingService) onSample(coord entity.Coordinate) {
	s.mu.Lock()
	sess := s.session
	if sess == nil {
		s.mu.Unlock()

		return
	}

	sess.progress.CurrentLocation = coord
	sess.hasFix = true
	s.updateProgressLocked(sess)
	s.appendLocked(s.now(), entity.LocationPayload{Location: coord})
	deliveryID := sess.progress.DeliveryID
	s.mu.Unlock()

	s.drain()

	go func() {
		if err := s.client.UpdateLocation(sess.ctx, deliveryID, coord); err != nil && sess.ctx.Err() == nil {
			s.logger.Warn("[Tracking] Location push failed",
				slog.String("delivery_id", deliveryID),
				slog.Any("error", err),
			)
		}
	}()
}

func (s *trackingService) onLocationUpdate(ev entity.LocationUpdateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.activeSessionLocked(ev.DeliveryID)
	if sess == nil {
		return
	}

	sess.progress.CurrentLocation = ev.Location
	sess.hasFix = true
	s.updateProgressLocked(sess)
}

func (s *trackingService) onStopCompleted(ev entity.StopCompletedEvent) {
	s.mu.Lock()
	sess := s.activeSessionLocked(ev.DeliveryID)
	if sess == nil {
		s.mu.Unlock()

		return
	}

	p := sess.progress
	if ev.StopIndex < 0 || ev.StopIndex >= p.TotalStops {
		s.mu.Unlock()
		s.logger.Warn("[Tracking] Ignoring stop completion outside the route",
			slog.String("delivery_id", ev.DeliveryID),
			slog.Int("stop_index", ev.StopIndex),
			slog.Int("total_stops", p.TotalStops),
		)

		return
	}

	pos, found := slices.BinarySearch(p.CompletedStopIndices, ev.StopIndex)
	if found {
		s.mu.Unlock()

		return
	}
	p.CompletedStopIndices = slices.Insert(p.CompletedStopIndices, pos, ev.StopIndex)
	s.updateProgressLocked(sess)
	s.appendLocked(ev.Timestamp, entity.StopCompletedPayload{StopIndex: ev.StopIndex, TotalStops: p.TotalStops})
	s.mu.Unlock()

	s.drain()
}

func (s *trackingService) onDeliveryCompleted(ev entity.DeliveryCompletedEvent) {
	s.mu.Lock()
	sess := s.activeSessionLocked(ev.DeliveryID)
	if sess == nil {
		s.mu.Unlock()

		return
	}

	p := sess.progress
	p.ProgressPercent = 100
	p.ETAMinutes = 0
	p.DistanceRemainingKm = 0
	p.NextStop = nil
	s.appendLocked(ev.Timestamp, entity.DeliveryCompletedPayload{RouteID: p.RouteID})
	s.endSessionLocked(entity.TrackingStateCompleted)
	s.mu.Unlock()

	s.drain()

	s.leave(context.Background(), p.DeliveryID)
	s.logger.Info("[Tracking] Delivery completed", slog.String("delivery_id", p.DeliveryID))
}

// activeSessionLocked returns the session if deliveryID is the live one. Must hold mu.
func (s *trackingService) activeSessionLocked(deliveryID string) *trackingSession {
	if s.session == nil || s.session.progress.DeliveryID != deliveryID {
		return nil
	}

	return s.session
}

// updateProgressLocked recomputes derived metrics from the completed set and
// the current location. It never fails. Must hold mu.
func (s *trackingService) updateProgressLocked(sess *trackingSession) {
	p := sess.progress

	p.ProgressPercent = int(math.Round(100 * float64(len(p.CompletedStopIndices)) / float64(p.TotalStops)))
	p.CurrentStopIndex = 0
	if n := len(p.CompletedStopIndices); n > 0 {
		p.CurrentStopIndex = p.CompletedStopIndices[n-1] + 1
	}

	p.NextStop = nil
	if p.CurrentStopIndex < len(sess.route.Stops) {
		stop := sess.route.Stops[p.CurrentStopIndex]
		p.NextStop = &entity.NextStop{
			Address:          stop.Address,
			Coordinate:       stop.Coordinate,
			EstimatedArrival: stop.EstimatedArrival,
		}
	}

	if !sess.hasFix {
		return
	}

	if p.NextStop == nil {
		p.DistanceRemainingKm = 0
		p.ETAMinutes = 0

		return
	}

	distance := geo.DistanceKm(p.CurrentLocation, p.NextStop.Coordinate)
	eta, err := geo.ETAMinutes(distance, s.avgSpeedKmh)
	if err != nil {
		s.logger.Warn("[Tracking] Cannot estimate ETA", slog.Any("error", err))

		return
	}
	p.DistanceRemainingKm = distance
	p.ETAMinutes = eta
}

// appendLocked adds a milestone to the log and queues it for listeners. The
// log timestamp never goes backwards. Must hold mu with a live session.
func (s *trackingService) appendLocked(ts time.Time, payload entity.MilestonePayload) {
	if ts.IsZero() {
		ts = s.now()
	}
	if n := len(s.milestones); n > 0 && ts.Before(s.milestones[n-1].Timestamp) {
		ts = s.milestones[n-1].Timestamp
	}

	m := entity.NewMilestone(s.session.progress.DeliveryID, ts, payload)
	s.milestones = append(s.milestones, m)
	s.pending = append(s.pending, pendingMilestone{
		milestone: m,
		progress:  s.session.progress.Clone(),
		listeners: s.listeners,
	})
}

// drain hands queued milestones to their listeners and the notification
// trigger, in append order.
func (s *trackingService) drain() {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.mu.Unlock()

			return
		}
		next := s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()

		for _, l := range next.listeners {
			s.notifyListener(l, next)
		}

		if s.trigger != nil {
			s.trigger.Fire(next.milestone)
		}
	}
}

func (s *trackingService) notifyListener(l listenerEntry, p pendingMilestone) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("[Tracking] Milestone listener panicked",
				slog.Uint64("listener_id", uint64(l.id)),
				slog.String("type", string(p.milestone.Type)),
				slog.Any("panic", r),
			)
		}
	}()

	l.fn(p.milestone, p.progress.Clone())
}

func initialProgress(deliveryID string, route *entity.OptimizedRoute) *entity.DeliveryProgress {
	first := route.Stops[0]

	return &entity.DeliveryProgress{
		DeliveryID:          deliveryID,
		RouteID:             route.RouteID,
		CurrentStopIndex:    0,
		TotalStops:          len(route.Stops),
		ProgressPercent:     0,
		ETAMinutes:          route.EstimatedTimeMinutes,
		DistanceRemainingKm: route.TotalDistanceKm,
		CurrentLocation:     first.Coordinate,
		NextStop: &entity.NextStop{
			Address:          first.Address,
			Coordinate:       first.Coordinate,
			EstimatedArrival: first.EstimatedArrival,
		},
		CompletedStopIndices: []int{},
	}
}
