package meal

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
)

var _ mealRepo = &mealRepoMock{}

type mealRepoMock struct {
	InsertFunc             func(ctx context.Context, owner domain.SessionID, m *domain.Meal) error
	ListByOwnerFunc        func(ctx context.Context, owner domain.SessionID) ([]domain.Meal, error)
	GetByOwnerAndIDFunc    func(ctx context.Context, owner domain.SessionID, mealID uuid.UUID) (*domain.Meal, error)
	UpdateByOwnerAndIDFunc func(ctx context.Context, owner domain.SessionID, mealID uuid.UUID, f domain.MealFields) (int64, error)
	DeleteByOwnerAndIDFunc func(ctx context.Context, owner domain.SessionID, mealID uuid.UUID) (int64, error)

	calls struct {
		Insert []struct {
			Ctx   context.Context
			Owner domain.SessionID
			M     *domain.Meal
		}
		ListByOwner []struct {
			Ctx   context.Context
			Owner domain.SessionID
		}
		GetByOwnerAndID []struct {
			Ctx    context.Context
			Owner  domain.SessionID
			MealID uuid.UUID
		}
		UpdateByOwnerAndID []struct {
			Ctx    context.Context
			Owner  domain.SessionID
			MealID uuid.UUID
			F      domain.MealFields
		}
		DeleteByOwnerAndID []struct {
			Ctx    context.Context
			Owner  domain.SessionID
			MealID uuid.UUID
		}
	}
	lockInsert             sync.RWMutex
	lockListByOwner        sync.RWMutex
	lockGetByOwnerAndID    sync.RWMutex
	lockUpdateByOwnerAndID sync.RWMutex
	lockDeleteByOwnerAndID sync.RWMutex
}

func (mock *mealRepoMock) Insert(ctx context.Context, owner domain.SessionID, m *domain.Meal) error {
	if mock.InsertFunc == nil {
		panic("mealRepoMock.InsertFunc: method is nil but mealRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.SessionID
		M     *domain.Meal
	}{Ctx: ctx, Owner: owner, M: m}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, owner, m)
}

func (mock *mealRepoMock) InsertCalls() []struct {
	Ctx   context.Context
	Owner domain.SessionID
	M     *domain.Meal
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *mealRepoMock) ListByOwner(ctx context.Context, owner domain.SessionID) ([]domain.Meal, error) {
	if mock.ListByOwnerFunc == nil {
		panic("mealRepoMock.ListByOwnerFunc: method is nil but mealRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.SessionID
	}{Ctx: ctx, Owner: owner}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, owner)
}

func (mock *mealRepoMock) ListByOwnerCalls() []struct {
	Ctx   context.Context
	Owner domain.SessionID
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *mealRepoMock) GetByOwnerAndID(ctx context.Context, owner domain.SessionID, mealID uuid.UUID) (*domain.Meal, error) {
	if mock.GetByOwnerAndIDFunc == nil {
		panic("mealRepoMock.GetByOwnerAndIDFunc: method is nil but mealRepo.GetByOwnerAndID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Owner  domain.SessionID
		MealID uuid.UUID
	}{Ctx: ctx, Owner: owner, MealID: mealID}
	mock.lockGetByOwnerAndID.Lock()
	mock.calls.GetByOwnerAndID = append(mock.calls.GetByOwnerAndID, callInfo)
	mock.lockGetByOwnerAndID.Unlock()
	return mock.GetByOwnerAndIDFunc(ctx, owner, mealID)
}

func (mock *mealRepoMock) GetByOwnerAndIDCalls() []struct {
	Ctx    context.Context
	Owner  domain.SessionID
	MealID uuid.UUID
} {
	mock.lockGetByOwnerAndID.RLock()
	calls := mock.calls.GetByOwnerAndID
	mock.lockGetByOwnerAndID.RUnlock()
	return calls
}

func (mock *mealRepoMock) UpdateByOwnerAndID(ctx context.Context, owner domain.SessionID, mealID uuid.UUID, f domain.MealFields) (int64, error) {
	if mock.UpdateByOwnerAndIDFunc == nil {
		panic("mealRepoMock.UpdateByOwnerAndIDFunc: method is nil but mealRepo.UpdateByOwnerAndID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Owner  domain.SessionID
		MealID uuid.UUID
		F      domain.MealFields
	}{Ctx: ctx, Owner: owner, MealID: mealID, F: f}
	mock.lockUpdateByOwnerAndID.Lock()
	mock.calls.UpdateByOwnerAndID = append(mock.calls.UpdateByOwnerAndID, callInfo)
	mock.lockUpdateByOwnerAndID.Unlock()
	return mock.UpdateByOwnerAndIDFunc(ctx, owner, mealID, f)
}

func (mock *mealRepoMock) UpdateByOwnerAndIDCalls() []struct {
	Ctx    context.Context
	Owner  domain.SessionID
	MealID uuid.UUID
	F      domain.MealFields
} {
	mock.lockUpdateByOwnerAndID.RLock()
	calls := mock.calls.UpdateByOwnerAndID
	mock.lockUpdateByOwnerAndID.RUnlock()
	return calls
}

func (mock *mealRepoMock) DeleteByOwnerAndID(ctx context.Context, owner domain.SessionID, mealID uuid.UUID) (int64, error) {
	if mock.DeleteByOwnerAndIDFunc == nil {
		panic("mealRepoMock.DeleteByOwnerAndIDFunc: method is nil but mealRepo.DeleteByOwnerAndID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Owner  domain.SessionID
		MealID uuid.UUID
	}{Ctx: ctx, Owner: owner, MealID: mealID}
	mock.lockDeleteByOwnerAndID.Lock()
	mock.calls.DeleteByOwnerAndID = append(mock.calls.DeleteByOwnerAndID, callInfo)
	mock.lockDeleteByOwnerAndID.Unlock()
	return mock.DeleteByOwnerAndIDFunc(ctx, owner, mealID)
}

func (mock *mealRepoMock) DeleteByOwnerAndIDCalls() []struct {
	Ctx    context.Context
	Owner  domain.SessionID
	MealID uuid.UUID
} {
	mock.lockDeleteByOwnerAndID.RLock()
	calls := mock.calls.DeleteByOwnerAndID
	mock.lockDeleteByOwnerAndID.RUnlock()
	return calls
}
