// Package managed provides a self-healing wrapper around one external
// dependency instance, such as a database pool, an HTTP client, or a broker
// connection.
//
// A Resource owns the full lifecycle of the wrapped instance: it creates it
// via a user-supplied initialize function, re-validates it with a recurring
// health probe while ready, evicts and rebuilds it when a probe fails, and
// retries initialization on an exponential backoff schedule until the
// dependency recovers.
//
// # Basic Usage
//
//	res, err := managed.New(managed.Config[*sql.DB]{
//	    Name: "orders-db",
//	    Initialize: func(ctx context.Context) (*sql.DB, error) {
//	        return sql.Open("postgres", dsn)
//	    },
//	    Teardown: func(ctx context.Context, db *sql.DB) error {
//	        return db.Close()
//	    },
//	    Healthcheck: managed.HealthcheckConfig[*sql.DB]{
//	        Interval: 30,
//	        Unit:     managed.UnitSecond,
//	        Check: func(ctx context.Context, db *sql.DB) (bool, error) {
//	            return db.PingContext(ctx) == nil, nil
//	        },
//	    },
//	    AutoInit: true,
//	})
//
//	db, err := res.Get()
//
// Callers must call Get on every use rather than caching the returned value,
// so that an evicted instance is never used after the fact. While the
// resource is not ready, Get fails fast with a NotReadyError carrying the
// last captured failure.
//
// # Concurrency
//
// A Resource is safe for concurrent use. Concurrent Init calls are coalesced
// into a single execution, overlapping probe cycles are skipped rather than
// queued, and at most one heal attempt is scheduled or in flight at any time.
package managed
