package membership

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/metrics"
	"github.com/robfig/cron/v3"
)

// RefreshJob periodically rewrites the member membership cache so that passes expire
// on the member list without anyone touching the member.
type RefreshJob struct {
	cron    *cron.Cron
	service *MembershipService
	timeout time.Duration
}

func NewRefreshJob(service *MembershipService, spec string, loc *time.Location) (*RefreshJob, error) {
	if loc == nil {
		loc = time.UTC
	}

	job := &RefreshJob{
		cron:    cron.New(cron.WithLocation(loc)),
		service: service,
		timeout: 5 * time.Minute,
	}

	if _, err := job.cron.AddFunc(spec, job.Run); err != nil {
		return nil, fmt.Errorf("회원권 갱신 스케줄 등록 실패 spec=%q: %w", spec, err)
	}
	return job, nil
}

func (j *RefreshJob) Start() {
	j.cron.Start()
}

// Stop waits for a running refresh to finish or ctx to expire
func (j *RefreshJob) Stop(ctx context.Context) {
	stopped := j.cron.Stop()
	select {
	case <-stopped.Done():
		slog.Info("회원권 상태 갱신 스케줄러 종료")
	case <-ctx.Done():
		slog.Warn("회원권 상태 갱신 스케줄러 종료 대기 시간 초과")
	}
}

// Run performs one refresh pass
func (j *RefreshJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	updated, err := j.service.RefreshAll(ctx)
	if err != nil {
		metrics.MembershipRefreshRuns.WithLabelValues("error").Inc()
		slog.Error("회원권 상태 갱신 실패", "error", err, "updated", updated)
		return
	}

	metrics.MembershipRefreshRuns.WithLabelValues("success").Inc()
	slog.Info("회원권 상태 갱신 완료", "updated", updated, "duration", time.Since(start))
}
