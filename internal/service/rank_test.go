package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vitawin/referral-engine/internal/domain"
	domainmocks "github.com/vitawin/referral-engine/internal/domain/mocks"
	"go.uber.org/zap"
)

func TestRankService_GetUserStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		levelRepo := domainmocks.NewLevelRepositoryMock(t)
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		network := domainmocks.NewNetworkServiceMock(t)
		svc := NewRankService(levelRepo, network, NewVolumeAggregator(orderRepo), zap.NewNop())

		network.EXPECT().GetDescendants(mock.Anything, int64(1), 0).Return([]domain.Descendant{
			{UserID: 2, Level: 1, ReferrerID: 1},
			{UserID: 3, Level: 2, ReferrerID: 2},
		}, nil).Once()
		orderRepo.EXPECT().SumPaidOrders(mock.Anything, []int64{1}, domain.Period{}).
			Return(domain.Volume{TotalPV: dec("40")}, nil).Once()
		orderRepo.EXPECT().SumPaidOrders(mock.Anything, []int64{2, 3}, domain.Period{}).
			Return(domain.Volume{TotalPV: dec("450")}, nil).Once()
		levelRepo.EXPECT().ListLevels(mock.Anything).Return(testLevels(), nil).Once()

		status, err := svc.GetUserStatus(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), status.UserID)
		assert.Equal(t, 3, status.CurrentLevel)
		require.NotNil(t, status.CurrentLevelInfo)
		assert.Equal(t, "Актив pro", status.CurrentLevelInfo.Name)
		require.NotNil(t, status.NextLevel)
		assert.Equal(t, 4, status.NextLevel.Level)
		assert.Equal(t, 1, status.RequiredForNext)
		assert.Equal(t, 2, status.TotalReferrals)
		assert.True(t, status.PersonalPV.Equal(dec("40")))
		assert.True(t, status.GroupPV.Equal(dec("450")))
	})

	t.Run("Volume below threshold keeps lower level", func(t *testing.T) {
		levelRepo := domainmocks.NewLevelRepositoryMock(t)
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		network := domainmocks.NewNetworkServiceMock(t)
		svc := NewRankService(levelRepo, network, NewVolumeAggregator(orderRepo), zap.NewNop())

		network.EXPECT().GetDescendants(mock.Anything, int64(1), 0).Return([]domain.Descendant{
			{UserID: 2, Level: 1, ReferrerID: 1},
			{UserID: 3, Level: 1, ReferrerID: 1},
		}, nil).Once()
		orderRepo.EXPECT().SumPaidOrders(mock.Anything, []int64{1}, domain.Period{}).Return(domain.Volume{}, nil).Once()
		orderRepo.EXPECT().SumPaidOrders(mock.Anything, []int64{2, 3}, domain.Period{}).
			Return(domain.Volume{TotalPV: dec("399.99")}, nil).Once()
		levelRepo.EXPECT().ListLevels(mock.Anything).Return(testLevels(), nil).Once()

		status, err := svc.GetUserStatus(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, status.CurrentLevel)
		assert.Equal(t, 3, status.NextLevel.Level)
		assert.Equal(t, 0, status.RequiredForNext)
	})

	t.Run("Empty level table", func(t *testing.T) {
		levelRepo := domainmocks.NewLevelRepositoryMock(t)
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		network := domainmocks.NewNetworkServiceMock(t)
		svc := NewRankService(levelRepo, network, NewVolumeAggregator(orderRepo), zap.NewNop())

		network.EXPECT().GetDescendants(mock.Anything, int64(7), 0).Return([]domain.Descendant{}, nil).Once()
		orderRepo.EXPECT().SumPaidOrders(mock.Anything, []int64{7}, domain.Period{}).Return(domain.Volume{}, nil).Once()
		levelRepo.EXPECT().ListLevels(mock.Anything).Return([]domain.MLMLevel{}, nil).Once()

		status, err := svc.GetUserStatus(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, 1, status.CurrentLevel)
		assert.Nil(t, status.CurrentLevelInfo)
		assert.Nil(t, status.NextLevel)
	})

	t.Run("Unknown user", func(t *testing.T) {
		levelRepo := domainmocks.NewLevelRepositoryMock(t)
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		network := domainmocks.NewNetworkServiceMock(t)
		svc := NewRankService(levelRepo, network, NewVolumeAggregator(orderRepo), zap.NewNop())

		network.EXPECT().GetDescendants(mock.Anything, int64(404), 0).Return(nil, domain.ErrUserNotFound).Once()

		status, err := svc.GetUserStatus(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, status)
	})

	t.Run("Volume error", func(t *testing.T) {
		levelRepo := domainmocks.NewLevelRepositoryMock(t)
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		network := domainmocks.NewNetworkServiceMock(t)
		svc := NewRankService(levelRepo, network, NewVolumeAggregator(orderRepo), zap.NewNop())

		network.EXPECT().GetDescendants(mock.Anything, int64(1), 0).Return([]domain.Descendant{}, nil).Once()
		orderRepo.EXPECT().SumPaidOrders(mock.Anything, []int64{1}, domain.Period{}).
			Return(domain.Volume{}, errors.New("db error")).Once()

		_, err := svc.GetUserStatus(ctx, 1)
		assert.Error(t, err)
	})
}

func TestRankService_Levels(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T) (*RankService, *domainmocks.LevelRepositoryMock) {
		levelRepo := domainmocks.NewLevelRepositoryMock(t)
		network := domainmocks.NewNetworkServiceMock(t)
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		return NewRankService(levelRepo, network, NewVolumeAggregator(orderRepo), zap.NewNop()), levelRepo
	}

	t.Run("ListLevels sorts by level", func(t *testing.T) {
		svc, levelRepo := newService(t)
		levels := testLevels()
		levelRepo.EXPECT().ListLevels(mock.Anything).
			Return([]domain.MLMLevel{levels[2], levels[0], levels[3], levels[1]}, nil).Once()

		result, err := svc.ListLevels(ctx)
		require.NoError(t, err)
		require.Len(t, result, 4)
		for i, level := range result {
			assert.Equal(t, i+1, level.Level)
		}
	})

	t.Run("GetLevel", func(t *testing.T) {
		svc, levelRepo := newService(t)
		level := testLevels()[1]
		levelRepo.EXPECT().GetLevel(mock.Anything, 2).Return(&level, nil).Once()

		result, err := svc.GetLevel(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Актив +", result.Name)
	})

	t.Run("GetLevel out of range", func(t *testing.T) {
		svc, _ := newService(t)

		for _, level := range []int{0, -1, 17} {
			result, err := svc.GetLevel(ctx, level)
			assert.ErrorIs(t, err, domain.ErrLevelNotFound)
			assert.Nil(t, result)
		}
	})

	t.Run("GetLevel missing row", func(t *testing.T) {
		svc, levelRepo := newService(t)
		levelRepo.EXPECT().GetLevel(mock.Anything, 9).Return(nil, domain.ErrLevelNotFound).Once()

		_, err := svc.GetLevel(ctx, 9)
		assert.ErrorIs(t, err, domain.ErrLevelNotFound)
	})

	t.Run("ReplaceLevels stores sorted table", func(t *testing.T) {
		svc, levelRepo := newService(t)
		levels := testLevels()
		levelRepo.EXPECT().ReplaceLevels(mock.Anything, levels).Return(nil).Once()

		err := svc.ReplaceLevels(ctx, []domain.MLMLevel{levels[3], levels[1], levels[0], levels[2]})
		assert.NoError(t, err)
	})

	t.Run("ReplaceLevels rejects invalid table", func(t *testing.T) {
		svc, _ := newService(t)
		levels := testLevels()
		levels[1].Level = 1

		err := svc.ReplaceLevels(ctx, levels)
		assert.ErrorIs(t, err, domain.ErrInvalidLevels)
	})

	t.Run("ReplaceLevels database error", func(t *testing.T) {
		svc, levelRepo := newService(t)
		levels := testLevels()
		levelRepo.EXPECT().ReplaceLevels(mock.Anything, levels).Return(errors.New("db error")).Once()

		err := svc.ReplaceLevels(ctx, levels)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidLevels)
	})
}
