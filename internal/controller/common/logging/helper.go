package logginghelper

import (
	log "github.com/sirupsen/logrus"
)

func LogReceived(operation, account string) {
	log.WithFields(log.Fields{
		"operation": operation,
		"account":   account,
	}).Debug("Received update via HTTP")
}

func LogRejected(operation, account string, err error) {
	log.WithFields(log.Fields{
		"operation": operation,
		"account":   account,
		"error":     err,
	}).Warn("Rejected update")
}

func LogKeywordMissing(account string, id uint64) {
	log.WithFields(log.Fields{
		"account": account,
		"keyword": id,
	}).Debug("Keyword not found, update ignored")
}
