package metrics

func (m *Metrics) RecordCacheHit(kind string) {
	m.safeExecute("RecordCacheHit", func() {
		m.CacheHits.WithLabelValues(kind).Inc()
	})
}

func (m *Metrics) RecordCacheMiss(kind string) {
	m.safeExecute("RecordCacheMiss", func() {
		m.CacheMisses.WithLabelValues(kind).Inc()
	})
}

func (m *Metrics) RecordCacheError(operation string) {
	m.safeExecute("RecordCacheError", func() {
		m.CacheErrors.WithLabelValues(operation).Inc()
	})
}

// RecordBusPublish counts a publish attempt and its failure, if any.
func (m *Metrics) RecordBusPublish(err error) {
	m.safeExecute("RecordBusPublish", func() {
		m.BusPublishedTotal.Inc()
		if err != nil {
			m.BusPublishErrorsTotal.Inc()
		}
	})
}

func (m *Metrics) RecordBusReceived() {
	m.safeExecute("RecordBusReceived", func() {
		m.BusReceivedTotal.Inc()
	})
}

func (m *Metrics) ConnectionOpened() {
	m.safeExecute("ConnectionOpened", func() {
		m.WSConnectionsActive.Inc()
	})
}

func (m *Metrics) ConnectionClosed() {
	m.safeExecute("ConnectionClosed", func() {
		m.WSConnectionsActive.Dec()
	})
}

func (m *Metrics) RecordSlowConsumer() {
	m.safeExecute("RecordSlowConsumer", func() {
		m.WSSlowConsumers.Inc()
	})
}

// RecordPresenceSwept adds the number of entries removed by one sweep.
func (m *Metrics) RecordPresenceSwept(n int64) {
	m.safeExecute("RecordPresenceSwept", func() {
		m.PresenceSweptTotal.Add(float64(n))
	})
}
