package dynamo

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/kwawicks/kwawicks-api/internal/domain"
)

// storeError tags a failed store call as a dependency failure while keeping
// the SDK error reachable through errors.As.
func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrDependency, op, err)
}

// putError maps a failed conditional PutItem: a condition failure becomes onCondition.
func putError(op string, err error, onCondition error) error {
	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return onCondition
	}
	return storeError(op, err)
}
