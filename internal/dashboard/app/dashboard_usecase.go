package app

import (
	"context"
	"fmt"

	"video_library_service/internal/dashboard/domain"
	"video_library_service/internal/dashboard/repository"
	videodomain "video_library_service/internal/video/domain"
	videorepo "video_library_service/internal/video/repository"
	"video_library_service/pkg"
	errprocess "video_library_service/pkg/err"
)

// DashboardUseCase channel statistics for the owner's dashboard
type DashboardUseCase interface {
	Stats(ctx context.Context, channelID string) (*domain.ChannelStats, error)
	Videos(ctx context.Context, channelID string) ([]videodomain.VideoView, error)
}

type dashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
	videoRepo     videorepo.VideoRepository
}

// NewDashboardUseCase create a new DashboardUseCase
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository,
	videoRepo videorepo.VideoRepository,
) DashboardUseCase {
	return &dashboardUseCase{
		dashboardRepo: dashboardRepo,
		videoRepo:     videoRepo,
	}
}

func (d *dashboardUseCase) Stats(ctx context.Context, channelID string) (*domain.ChannelStats, error) {
	channel, err := pkg.ParseID(channelID)
	if err != nil {
		return nil, err
	}

	stats, err := d.dashboardRepo.ChannelStats(ctx, channel)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("get channel stats failed : %v", err))
	}
	return stats, nil
}

func (d *dashboardUseCase) Videos(ctx context.Context, channelID string) ([]videodomain.VideoView, error) {
	channel, err := pkg.ParseID(channelID)
	if err != nil {
		return nil, err
	}

	videos, err := d.videoRepo.ByOwner(ctx, channel)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("list channel videos failed : %v", err))
	}
	return videos, nil
}
