package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// PlaceOrderCommandHandler handles customer checkout. Splits the cart into
// one shop order per shop, resolves the operating merchant for each through
// the catalog, and persists the resulting order aggregate.
type PlaceOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	shopDirectory ports.ShopDirectory
}

// NewPlaceOrderCommandHandler creates a handler for checkout requests.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	shopDirectory ports.ShopDirectory,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:    uowFactory,
		shopDirectory: shopDirectory,
	}
}

// Handle processes the checkout command.
// Every shop order starts in Pending; the totals are derived from the line
// items, never taken from the client.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	shopOrders, err := h.buildShopOrders(ctx, cmd.Items())
	if err != nil {
		return err
	}

	orderEntity, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(),
		cmd.Address(), cmd.Destination(),
		cmd.PaymentMethod(), shopOrders)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// buildShopOrders groups cart lines by shop, preserving first-seen shop order.
func (h PlaceOrderCommandHandler) buildShopOrders(ctx context.Context, cart []CartItem) ([]*order.ShopOrder, error) {
	itemsByShop := make(map[kernel.UUID][]order.Item)
	shopIDs := make([]kernel.UUID, 0)

	for _, line := range cart {
		item, err := order.NewItem(line.Name, line.Price, line.Quantity, line.ImageURL, line.FoodType)
		if err != nil {
			return nil, err
		}

		if _, seen := itemsByShop[line.ShopID]; !seen {
			shopIDs = append(shopIDs, line.ShopID)
		}
		itemsByShop[line.ShopID] = append(itemsByShop[line.ShopID], item)
	}

	shopOrders := make([]*order.ShopOrder, 0, len(shopIDs))
	for _, shopID := range shopIDs {
		merchantID, err := h.shopDirectory.ResolveMerchant(ctx, shopID)
		if err != nil {
			return nil, err
		}

		shopOrder, err := order.NewShopOrder(kernel.NewUUID(), shopID, merchantID, itemsByShop[shopID])
		if err != nil {
			return nil, err
		}

		shopOrders = append(shopOrders, shopOrder)
	}

	return shopOrders, nil
}
