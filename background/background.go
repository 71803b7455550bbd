package background

import (
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "background")

// Task names shared by the API enqueuer and the worker.
const (
	TaskBroadcastNewRequest   = "broadcast_new_request"
	TaskNotifyRequestAccepted = "notify_request_accepted"
)
