package exchange

import (
	"log"

	"github.com/atcbosselut/myria"
	uuid "github.com/gofrs/uuid"
)

// NewExchangePairID mints a process-wide-unique identifier for one logical
// exchange channel. Pair ids are minted once, when a query plan is compiled,
// and embedded identically in the producer-side and consumer-side operator
// descriptions which must rendezvous.
func NewExchangePairID() myria.ExchangePairID {
	id, err := uuid.NewV4()
	if err != nil {
		log.Fatalf("failed to generate UUID for ExchangePairID: %v", err)
	}
	return myria.ExchangePairID(id.String())
}
