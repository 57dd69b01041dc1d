package logger

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"
)

type LoggerTestSuite struct {
	suite.Suite
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (suite *LoggerTestSuite) TestNewLoggerDefaultLevel() {
	l, err := NewLogger("")
	suite.Require().NoError(err)
	suite.NotNil(l.Logger)
	suite.True(l.Core().Enabled(zapcore.InfoLevel))
	suite.False(l.Core().Enabled(zapcore.DebugLevel))
}

func (suite *LoggerTestSuite) TestNewLoggerDebugLevel() {
	l, err := NewLogger("debug")
	suite.Require().NoError(err)
	suite.True(l.Core().Enabled(zapcore.DebugLevel))
}

func (suite *LoggerTestSuite) TestNewLoggerInvalidLevel() {
	_, err := NewLogger("verbose")
	suite.Error(err)
}

func (suite *LoggerTestSuite) TestNopLogger() {
	l := NewNopLogger()
	suite.NotNil(l)
	l.Info("discarded")
}

func (suite *LoggerTestSuite) TestSyncNilLogger() {
	l := &Logger{}
	suite.NoError(l.Sync())
}
