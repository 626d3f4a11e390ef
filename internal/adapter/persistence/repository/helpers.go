package repository

import (
	"errors"
	"sort"

	"luthierflow/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// sortByEntryDateDesc orders newest entry first. Entry dates are ISO
// calendar dates, so lexical order is chronological.
func sortByEntryDateDesc(orders []entities.ServiceOrder) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].EntryDate > orders[j].EntryDate
	})
}
