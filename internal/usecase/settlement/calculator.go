package settlement

import (
	"fmt"

	"github.com/openmazad/auction-service/internal/domain"
	"github.com/shopspring/decimal"
)

// AmountDue computes what the winner still owes. For reserve auctions the
// winner has already put up the floor (minimum price, or reserve price when
// no minimum is set) to participate, so only the excess over the floor is
// due. For every other type the full winning bid is due.
//
// A reserve auction without a positive floor is a data inconsistency: this
// returns a Configuration error instead of silently charging the full bid.
func AmountDue(auction *domain.Auction, winner *domain.Winner) (decimal.Decimal, error) {
	if auction.Type != domain.TypeReserve {
		return winner.Amount, nil
	}

	floor := auction.FloorPrice()
	if floor.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.NewError(
			domain.KindConfiguration,
			domain.ReasonNoReserveFloor,
			fmt.Sprintf("reserve auction %s has no positive floor price", auction.ID),
		)
	}

	due := winner.Amount.Sub(floor)
	if due.IsNegative() {
		return decimal.Zero, nil
	}
	return due, nil
}
