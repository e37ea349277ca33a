package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSalaryDerivations(t *testing.T) {
	j := Job{AnnualSalary: 78000}

	assert.Equal(t, 6500.0, j.MonthlySalary())
	assert.Equal(t, 3000.0, j.PaycheckAmount(26))
	// Zero or negative period counts fall back to bi-weekly.
	assert.Equal(t, 3000.0, j.PaycheckAmount(0))
	assert.Equal(t, 3000.0, j.PaycheckAmount(-4))
}
