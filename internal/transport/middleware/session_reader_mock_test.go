package middleware

import (
	"net/http"
	"sync"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
)

var _ sessionReader = &sessionReaderMock{}

type sessionReaderMock struct {
	ReadFunc func(r *http.Request) (domain.SessionID, error)

	calls struct {
		Read []struct {
			R *http.Request
		}
	}
	lockRead sync.RWMutex
}

func (mock *sessionReaderMock) Read(r *http.Request) (domain.SessionID, error) {
	if mock.ReadFunc == nil {
		panic("sessionReaderMock.ReadFunc: method is nil but sessionReader.Read was just called")
	}
	callInfo := struct{ R *http.Request }{R: r}
	mock.lockRead.Lock()
	mock.calls.Read = append(mock.calls.Read, callInfo)
	mock.lockRead.Unlock()
	return mock.ReadFunc(r)
}

func (mock *sessionReaderMock) ReadCalls() []struct{ R *http.Request } {
	mock.lockRead.RLock()
	calls := mock.calls.Read
	mock.lockRead.RUnlock()
	return calls
}
