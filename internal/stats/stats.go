// Package stats ships per-battle measurements to InfluxDB when the
// sink is enabled. Battles are served fine without it; a dead Influx
// endpoint only costs the measurements.
package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	influxdb2_api "github.com/influxdata/influxdb-client-go/v2/api"
	influxdb2_write "github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Manager handles the InfluxDB connection and battle writes.
type Manager struct {
	Client  influxdb2.Client
	Writer  influxdb2_api.WriteAPI
	IsValid bool
	Logger  zerolog.Logger
}

// NewManager creates a new InfluxDB stats manager.
func NewManager(log zerolog.Logger) *Manager {
	return &Manager{Logger: log}
}

// Connect establishes a connection to InfluxDB and creates the battle
// stats writer.
func (m *Manager) Connect() error {
	if !viper.GetBool("influx.enabled") {
		return errors.New("influx.enabled is false")
	}

	m.Client = influxdb2.NewClientWithOptions(
		fmt.Sprintf(
			"%s://%s:%s",
			viper.GetString("influx.protocol"),
			viper.GetString("influx.host"),
			viper.GetString("influx.port"),
		),
		viper.GetString("influx.token"),
		influxdb2.DefaultOptions().
			SetBatchSize(500).
			SetFlushInterval(1000),
	)

	running, err := m.Client.Ping(context.Background())
	if err != nil || !running {
		m.IsValid = false
		m.Logger.Warn().Err(err).Msg("InfluxDB client failed to initialize, battle stats disabled")
		return fmt.Errorf("influxdb ping failed: %v", err)
	}
	m.IsValid = true

	bucket := viper.GetString("influx.bucket")
	m.Writer = m.Client.WriteAPI(viper.GetString("influx.org"), bucket)

	errorsCh := m.Writer.Errors()
	go func() {
		for writeErr := range errorsCh {
			m.Logger.Error().Err(writeErr).Str("bucket", bucket).
				Msg("Error sending data to InfluxDB")
		}
	}()

	m.Logger.Info().Str("bucket", bucket).Msg("InfluxDB client initialized")
	return nil
}

// RecordBattle writes one battle measurement: outcome and driver state
// as tags, turn count and wall time as fields.
func (m *Manager) RecordBattle(outcome, state string, numTurns int, duration time.Duration) {
	if m == nil || !m.IsValid {
		return
	}
	point := influxdb2_write.NewPointWithMeasurement("battle").
		AddTag("outcome", outcome).
		AddTag("state", state).
		AddField("num_turns", numTurns).
		AddField("duration_ms", duration.Milliseconds()).
		SetTime(time.Now())
	m.Writer.WritePoint(point)
}

// Close flushes pending writes and shuts the client down.
func (m *Manager) Close() {
	if m.Writer != nil {
		m.Writer.Flush()
	}
	if m.Client != nil {
		m.Client.Close()
	}
}
