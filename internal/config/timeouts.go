package config

import (
	"os"
	"time"
)

// Timeouts holds the polling and wait settings of long-running operations.
// These values can be customized via environment variables.
type Timeouts struct {
	PollFrequency   time.Duration // Interval between polls of a long-running operation
	ClusterCreate   time.Duration // Upper bound for cluster creation; zero waits for the service
	CredentialCheck time.Duration // Timeout for the initial token acquisition
	MonitorInterval time.Duration // Refresh interval of `cluster monitor --watch`
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - EASYCLUSTER_POLL_FREQUENCY (default: 10s)
//   - EASYCLUSTER_TIMEOUT_CLUSTER_CREATE (default: 0, no timeout)
//   - EASYCLUSTER_TIMEOUT_CREDENTIAL (default: 30s)
//   - EASYCLUSTER_MONITOR_INTERVAL (default: 15s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		PollFrequency:   parseDuration("EASYCLUSTER_POLL_FREQUENCY", 10*time.Second, false),
		ClusterCreate:   parseDuration("EASYCLUSTER_TIMEOUT_CLUSTER_CREATE", 0, true),
		CredentialCheck: parseDuration("EASYCLUSTER_TIMEOUT_CREDENTIAL", 30*time.Second, false),
		MonitorInterval: parseDuration("EASYCLUSTER_MONITOR_INTERVAL", DefaultMonitorInterval, false),
	}
}

// TestTimeouts returns short timeouts for unit tests.
func TestTimeouts() *Timeouts {
	return &Timeouts{
		PollFrequency:   10 * time.Millisecond,
		CredentialCheck: time.Second,
		MonitorInterval: 10 * time.Millisecond,
	}
}

// DefaultMonitorInterval is the watch refresh interval when none is configured.
const DefaultMonitorInterval = 15 * time.Second

// parseDuration parses a duration from an environment variable.
// If the variable is not set, negative, or fails to parse, the default value is returned.
// Zero is only accepted when allowZero is set; intervals must stay positive.
func parseDuration(envVar string, defaultVal time.Duration, allowZero bool) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil || d < 0 || (d == 0 && !allowZero) {
		return defaultVal
	}

	return d
}
