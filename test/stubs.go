package test

import (
	"go.uber.org/mock/gomock"

	"fedpub/test/mocks"
)

func stubLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

// stubObservers wires the request observer factories so durations can be
// "measured" without a live registry.
func stubObservers(ctrl *gomock.Controller, mockMetrics *mocks.MockIMetrics) {
	observer := mocks.NewMockIRequestObserver(ctrl)
	observer.EXPECT().Finish().AnyTimes()
	mockMetrics.EXPECT().StartApubRequestIn(gomock.Any()).Return(observer).AnyTimes()
	mockMetrics.EXPECT().StartApubRequestOut(gomock.Any()).Return(observer).AnyTimes()
	mockMetrics.EXPECT().StartApiRequestIn(gomock.Any()).Return(observer).AnyTimes()
}
