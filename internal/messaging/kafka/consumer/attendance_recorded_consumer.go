package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"kampus-absensi/internal/device"
	"kampus-absensi/internal/events"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// counterKey: absensi:counter:<yyyy-mm>:<tipe> untuk dashboard real-time.
func counterKey(tanggal, tipe string) string {
	period := tanggal
	if len(tanggal) >= 7 {
		period = tanggal[:7]
	}
	return fmt.Sprintf("absensi:counter:%s:%s", period, strings.ToLower(tipe))
}

func ConsumeAttendanceRecorded(
	ctx context.Context,
	reader *kafkago.Reader,
	deviceRepo device.Repository,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_recorded")
	log.Info("attendance recorded consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance recorded consumer stopped")
				return
			}
			log.Error("fetch attendance recorded message failed", zap.Error(err))
			continue
		}

		var event events.AttendanceRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendance_recorded event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		// Perbarui last_seen perangkat berdasarkan waktu event, bukan waktu konsumsi.
		seenAt := event.OccurredAt
		if seenAt.IsZero() {
			seenAt = time.Now().UTC()
		}
		if err := deviceRepo.TouchLastSeen(ctx, event.DeviceID, seenAt); err != nil {
			log.Error("touch device last_seen failed",
				zap.String("device_id", event.DeviceID),
				zap.Error(err),
			)
			continue
		}

		// Counter bulanan best effort, angka resminya tetap dari database.
		if rdb != nil {
			if err := rdb.Incr(ctx, counterKey(event.TanggalAbsensi, event.TipeAbsensi)).Err(); err != nil {
				log.Warn("increment attendance counter failed",
					zap.String("tanggal", event.TanggalAbsensi),
					zap.String("tipe", event.TipeAbsensi),
					zap.Error(err),
				)
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance recorded message failed", zap.Error(err))
			continue
		}

		log.Info("attendance recorded event processed",
			zap.String("attendance_id", event.AttendanceID),
			zap.String("device_id", event.DeviceID),
			zap.String("tipe", event.TipeAbsensi),
		)
	}
}
