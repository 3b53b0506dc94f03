package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
	"github.com/heartmarshall/mealtrack-backend/internal/service/meal"
)

var _ mealService = &mealServiceMock{}

type mealServiceMock struct {
	ListFunc     func(ctx context.Context) ([]domain.Meal, error)
	GetFunc      func(ctx context.Context, mealID uuid.UUID) (*domain.Meal, error)
	CreateFunc   func(ctx context.Context, input meal.MealInput) (*domain.Meal, error)
	UpdateFunc   func(ctx context.Context, mealID uuid.UUID, input meal.MealInput) error
	DeleteFunc   func(ctx context.Context, mealID uuid.UUID) (int64, error)
	ValidateFunc func(input meal.MealInput) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Get []struct {
			Ctx    context.Context
			MealID uuid.UUID
		}
		Create []struct {
			Ctx   context.Context
			Input meal.MealInput
		}
		Update []struct {
			Ctx    context.Context
			MealID uuid.UUID
			Input  meal.MealInput
		}
		Delete []struct {
			Ctx    context.Context
			MealID uuid.UUID
		}
		Validate []struct {
			Input meal.MealInput
		}
	}
	lockList     sync.RWMutex
	lockGet      sync.RWMutex
	lockCreate   sync.RWMutex
	lockUpdate   sync.RWMutex
	lockDelete   sync.RWMutex
	lockValidate sync.RWMutex
}

func (mock *mealServiceMock) List(ctx context.Context) ([]domain.Meal, error) {
	if mock.ListFunc == nil {
		panic("mealServiceMock.ListFunc: method is nil but mealService.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *mealServiceMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *mealServiceMock) Get(ctx context.Context, mealID uuid.UUID) (*domain.Meal, error) {
	if mock.GetFunc == nil {
		panic("mealServiceMock.GetFunc: method is nil but mealService.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		MealID uuid.UUID
	}{Ctx: ctx, MealID: mealID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, mealID)
}

func (mock *mealServiceMock) GetCalls() []struct {
	Ctx    context.Context
	MealID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *mealServiceMock) Create(ctx context.Context, input meal.MealInput) (*domain.Meal, error) {
	if mock.CreateFunc == nil {
		panic("mealServiceMock.CreateFunc: method is nil but mealService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input meal.MealInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *mealServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input meal.MealInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *mealServiceMock) Update(ctx context.Context, mealID uuid.UUID, input meal.MealInput) error {
	if mock.UpdateFunc == nil {
		panic("mealServiceMock.UpdateFunc: method is nil but mealService.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		MealID uuid.UUID
		Input  meal.MealInput
	}{Ctx: ctx, MealID: mealID, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, mealID, input)
}

func (mock *mealServiceMock) UpdateCalls() []struct {
	Ctx    context.Context
	MealID uuid.UUID
	Input  meal.MealInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *mealServiceMock) Delete(ctx context.Context, mealID uuid.UUID) (int64, error) {
	if mock.DeleteFunc == nil {
		panic("mealServiceMock.DeleteFunc: method is nil but mealService.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		MealID uuid.UUID
	}{Ctx: ctx, MealID: mealID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, mealID)
}

func (mock *mealServiceMock) DeleteCalls() []struct {
	Ctx    context.Context
	MealID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *mealServiceMock) Validate(input meal.MealInput) error {
	if mock.ValidateFunc == nil {
		panic("mealServiceMock.ValidateFunc: method is nil but mealService.Validate was just called")
	}
	callInfo := struct{ Input meal.MealInput }{Input: input}
	mock.lockValidate.Lock()
	mock.calls.Validate = append(mock.calls.Validate, callInfo)
	mock.lockValidate.Unlock()
	return mock.ValidateFunc(input)
}

func (mock *mealServiceMock) ValidateCalls() []struct{ Input meal.MealInput } {
	mock.lockValidate.RLock()
	calls := mock.calls.Validate
	mock.lockValidate.RUnlock()
	return calls
}
