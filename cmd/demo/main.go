// Command demo walks the checkout workflow end to end against a
// seeded in-memory catalog, printing receipts and surfacing each
// failure mode on purpose.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/checkout"
	"github.com/noah-isme/backend-kasir/internal/config"
	"github.com/noah-isme/backend-kasir/internal/customer"
	"github.com/noah-isme/backend-kasir/internal/money"
	"github.com/noah-isme/backend-kasir/internal/obs"
	"github.com/noah-isme/backend-kasir/internal/shipping"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := obs.NewLogger("console", cfg.LogLevel)

	shippingSvc := &shipping.Service{
		RatePerKg:     cfg.ShippingRatePerKg,
		FreeThreshold: cfg.FreeShipThreshold,
		Notifier:      shipping.LogNotifier{Logger: logger},
	}
	checkoutSvc := &checkout.Service{Shipping: shippingSvc}
	printer := checkout.ReceiptPrinter{Out: os.Stdout}
	ctx := context.Background()

	basicCheckout(ctx, checkoutSvc, printer)
	expiredProduct(ctx, checkoutSvc)
	insufficientStock(ctx, checkoutSvc, printer)
	cartOperations(ctx, checkoutSvc)
	insufficientBalance(ctx, checkoutSvc)
}

func basicCheckout(ctx context.Context, svc *checkout.Service, printer checkout.ReceiptPrinter) {
	fmt.Println("--- basic checkout ---")
	laptop := mustShippable("Laptop", "30000", 5, 5.0)
	bread := mustExpirable("Bread", "5", 20, time.Now().AddDate(0, 0, 2))
	cheese, err := catalog.NewExpirableShippable("Cheese", money.MustParse("20"), 20, money.MustKilograms(0.325), time.Now().AddDate(0, 0, 10))
	if err != nil {
		panic(err)
	}

	c := mustCustomer("Ahmed", "125000")
	must(c.AddToCart(laptop, 1))
	must(c.AddToCart(bread, 10))
	must(c.AddToCart(cheese, 3))

	result, err := svc.Process(ctx, c)
	if err != nil {
		fmt.Fprintln(os.Stderr, "checkout failed:", err)
		return
	}
	_ = printer.Print(result)
	fmt.Println()
}

func expiredProduct(ctx context.Context, svc *checkout.Service) {
	fmt.Println("--- expired product ---")
	milk := mustExpirable("Milk", "10", 10, time.Now().AddDate(0, 0, -1))
	c := mustCustomer("Ahmed", "1000")
	must(c.AddToCart(milk, 1))

	if _, err := svc.Process(ctx, c); err != nil {
		fmt.Println("checkout rejected:", err)
	}
	fmt.Println()
}

func insufficientStock(ctx context.Context, svc *checkout.Service, printer checkout.ReceiptPrinter) {
	fmt.Println("--- insufficient stock ---")
	laptop := mustShippable("Laptop", "1", 5, 1.0)
	c := mustCustomer("Ahmed", "100")
	must(c.AddToCart(laptop, 5))

	result, err := svc.Process(ctx, c)
	if err != nil {
		fmt.Fprintln(os.Stderr, "checkout failed:", err)
		return
	}
	_ = printer.Print(result)

	if err := c.AddToCart(laptop, 1); err != nil {
		fmt.Println("add to cart rejected:", err)
	}
	fmt.Println()
}

func cartOperations(ctx context.Context, svc *checkout.Service) {
	fmt.Println("--- cart operations ---")
	laptop := mustShippable("Laptop", "30000", 5, 5.0)
	c := mustCustomer("Ahmed", "50000")
	must(c.AddToCart(laptop, 2))
	must(c.RemoveFromCart(laptop.ID()))

	if _, err := svc.Process(ctx, c); err != nil {
		fmt.Println("checkout rejected:", err)
	}
	fmt.Println()
}

func insufficientBalance(ctx context.Context, svc *checkout.Service) {
	fmt.Println("--- insufficient balance ---")
	laptop := mustShippable("Laptop", "30000", 5, 5.0)
	c := mustCustomer("PoorCustomer", "10")
	must(c.AddToCart(laptop, 1))

	if _, err := svc.Process(ctx, c); err != nil {
		fmt.Println("checkout rejected:", err)
	}
	fmt.Println()
}

func mustShippable(name, price string, quantity int, kg float64) *catalog.Product {
	p, err := catalog.NewShippable(name, money.MustParse(price), quantity, money.MustKilograms(kg))
	if err != nil {
		panic(err)
	}
	return p
}

func mustExpirable(name, price string, quantity int, expiresAt time.Time) *catalog.Product {
	p, err := catalog.NewExpirable(name, money.MustParse(price), quantity, expiresAt)
	if err != nil {
		panic(err)
	}
	return p
}

func mustCustomer(name, balance string) *customer.Customer {
	c, err := customer.New(name, money.MustParse(balance))
	if err != nil {
		panic(err)
	}
	return c
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
