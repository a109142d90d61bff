package product

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/lib/pq"
)

const (
	// codeProbeLimit bounds the existence-check walk when consecutive codes
	// are already taken (legacy data, prior collisions).
	codeProbeLimit = 1000

	// createRetryLimit bounds re-allocation after a unique-constraint race
	// at insert time.
	createRetryLimit = 5
)

var codeSuffix = regexp.MustCompile(`-(\d+)$`)

// nextProductCode allocates a candidate code of the form {TYPE}-{NNN},
// zero-padded to at least three digits (SHAWL-001, SHAWL-1024).
//
// The latest code of the category seeds the counter; a malformed or legacy
// code falls back to 1 and the probe loop walks past anything that already
// exists. The result is only guaranteed unique at the moment of the check;
// the insert path owns the race (see Service.Create).
func nextProductCode(ctx context.Context, repo Repository, pt ProductType) (string, error) {
	last, err := repo.LatestCodeByType(ctx, pt)
	if err != nil {
		return "", err
	}

	counter := 1
	if last != "" {
		if m := codeSuffix.FindStringSubmatch(last); m != nil {
			n, err := strconv.Atoi(m[1])
			if err == nil {
				counter = n + 1
			}
		}
	}

	for i := 0; i < codeProbeLimit; i++ {
		code := fmt.Sprintf("%s-%03d", pt, counter)

		exists, err := repo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}

		counter++
	}

	return "", ErrCodeContention
}

// isCodeCollision reports whether err is the products.product_code unique
// constraint firing, i.e. a concurrent allocator won the insert race.
func isCodeCollision(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "23505" && pqErr.Constraint == "products_product_code_key"
}
