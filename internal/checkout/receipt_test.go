package checkout_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-kasir/internal/cart"
	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/checkout"
	"github.com/noah-isme/backend-kasir/internal/money"
)

func TestReceiptPrint(t *testing.T) {
	t.Parallel()

	cheese, err := catalog.NewStandard("Cheese", money.MustParse("100"), 10)
	require.NoError(t, err)
	biscuits, err := catalog.NewStandard("Biscuits", money.MustParse("150"), 10)
	require.NoError(t, err)

	cheeseLine, err := cart.NewItem(cheese, 2)
	require.NoError(t, err)
	biscuitsLine, err := cart.NewItem(biscuits, 1)
	require.NoError(t, err)

	result, err := checkout.NewResult(
		[]*cart.Item{cheeseLine, biscuitsLine},
		money.MustParse("350"),
		money.MustParse("30"),
		money.MustParse("380"),
		money.MustParse("120"),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, checkout.ReceiptPrinter{Out: &buf}.Print(result))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "** Checkout receipt **\n"))
	require.Contains(t, out, "2x Cheese")
	require.Contains(t, out, "200.00")
	require.Contains(t, out, "1x Biscuits")
	require.Contains(t, out, "150.00")
	require.Contains(t, out, "Subtotal")
	require.Contains(t, out, "350.00")
	require.Contains(t, out, "Shipping")
	require.Contains(t, out, "30.00")
	require.Contains(t, out, "Amount")
	require.Contains(t, out, "380.00")
	require.Contains(t, out, "Remaining balance")
	require.Contains(t, out, "120.00")
}
