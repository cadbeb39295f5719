//go:generate goverter gen github.com/DRSN-tech/storefront-backend/internal/repository/redis/converter

package converter

import (
	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

// goverter:converter
type CartLineConverter interface {
	ToRedisModel(line *domain.CartLine) *CartLineRedisModel
	ToDomain(model *CartLineRedisModel) *domain.CartLine
	ToArrRedisModel(lines []domain.CartLine) []CartLineRedisModel
	ToArrDomain(models []CartLineRedisModel) []domain.CartLine
}
