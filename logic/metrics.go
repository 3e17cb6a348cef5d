package logic

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"fedpub/shared"
)

type IMetrics interface {
	StartApubRequestIn(label string) IRequestObserver
	StartApubRequestOut(label string) IRequestObserver
	StartApiRequestIn(label string) IRequestObserver
	ServiceStarted()
	ActivityReceived(activityType string)
	ActivityRejected(activityType string)
	NotePublished()
	DeliverySucceeded()
	DeliveryRetried()
	DeliveryAbandoned()
	TotalFollowers(count int)
	DeliveryQueueLength(length int)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg                 *shared.Config
	apubRequestsIn      *prometheus.HistogramVec
	apubRequestsOut     *prometheus.HistogramVec
	apiRequestsIn       *prometheus.HistogramVec
	activitiesReceived  *prometheus.CounterVec
	activitiesRejected  *prometheus.CounterVec
	notesPublished      prometheus.Counter
	deliveriesSucceeded prometheus.Counter
	deliveriesRetried   prometheus.Counter
	deliveriesAbandoned prometheus.Counter
	serviceStarted      prometheus.Counter
	totalFollowers      prometheus.Gauge
	deliveryQueueLength prometheus.Gauge
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.apubRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "apub_requests_in_duration",
		Help: "Duration in seconds of ActivityPub requests served.",
	}, []string{"label"})
	prometheus.Register(res.apubRequestsIn)

	res.apubRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "apub_requests_out_duration",
		Help: "Duration in seconds of ActivityPub requests made.",
	}, []string{"label"})
	prometheus.Register(res.apubRequestsOut)

	res.apiRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "api_requests_in_duration",
		Help: "Duration in seconds of service API requests served.",
	}, []string{"label"})
	prometheus.Register(res.apiRequestsIn)

	res.activitiesReceived = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "activities_received",
		Help: "Number of inbound activities received, by type",
	}, []string{"type"})
	prometheus.Register(res.activitiesReceived)

	res.activitiesRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "activities_rejected",
		Help: "Number of inbound activities rejected, by type",
	}, []string{"type"})
	prometheus.Register(res.activitiesRejected)

	res.notesPublished = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notes_published",
		Help: "Number of notes published through the outbox",
	})
	prometheus.Register(res.notesPublished)

	res.deliveriesSucceeded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deliveries_succeeded",
		Help: "Number of activity deliveries that succeeded",
	})
	prometheus.Register(res.deliveriesSucceeded)

	res.deliveriesRetried = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deliveries_retried",
		Help: "Number of activity deliveries rescheduled after a failure",
	})
	prometheus.Register(res.deliveriesRetried)

	res.deliveriesAbandoned = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deliveries_abandoned",
		Help: "Number of activity deliveries abandoned after the last retry",
	})
	prometheus.Register(res.deliveriesAbandoned)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.totalFollowers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "total_follower_count",
		Help: "Total follower count of local accounts",
	})
	prometheus.Register(res.totalFollowers)

	res.deliveryQueueLength = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "delivery_queue_length",
		Help: "Items in delivery queue",
	})
	prometheus.Register(res.deliveryQueueLength)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartApubRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apubRequestsIn}
}

func (m *metrics) StartApubRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apubRequestsOut}
}

func (m *metrics) StartApiRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apiRequestsIn}
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) ActivityReceived(activityType string) {
	m.activitiesReceived.WithLabelValues(activityType).Add(1)
}

func (m *metrics) ActivityRejected(activityType string) {
	m.activitiesRejected.WithLabelValues(activityType).Add(1)
}

func (m *metrics) NotePublished() {
	m.notesPublished.Add(1)
}

func (m *metrics) DeliverySucceeded() {
	m.deliveriesSucceeded.Add(1)
}

func (m *metrics) DeliveryRetried() {
	m.deliveriesRetried.Add(1)
}

func (m *metrics) DeliveryAbandoned() {
	m.deliveriesAbandoned.Add(1)
}

func (m *metrics) TotalFollowers(count int) {
	m.totalFollowers.Set(float64(count))
}

func (m *metrics) DeliveryQueueLength(length int) {
	m.deliveryQueueLength.Set(float64(length))
}
