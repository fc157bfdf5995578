package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/presale/internal/client/client"
	"github.com/dmitrijs2005/presale/internal/common"
	"github.com/dmitrijs2005/presale/internal/presale"
)

func (a *App) Rates(ctx context.Context) error {
	a.printf("Token price: $%s\n", a.config.TokenPrice)
	for _, c := range presale.Supported {
		rate, err := a.config.Rates.USDPerUnit(c)
		if err != nil {
			continue
		}
		a.printf("  1 %s = %s\n", c, formatUSD(rate))
	}
	return nil
}

// SetCurrency changes the form's currency and shows the updated quote.
func (a *App) SetCurrency(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: currency <ETH|BNB|BTC>")
		return common.ErrorValidation
	}
	c, err := presale.ParseCurrency(args[0])
	if err != nil {
		a.println("Unsupported currency:", args[0])
		return err
	}
	a.intent.Currency = c
	return a.Quote(ctx)
}

// SetAmount sets the form's amount text and shows the updated quote. Without
// arguments the amount is cleared.
func (a *App) SetAmount(ctx context.Context, args []string) error {
	a.intent.Amount = strings.Join(args, "")
	return a.Quote(ctx)
}

// Quote shows what the current form is worth. It is recomputed on every call.
func (a *App) Quote(ctx context.Context) error {
	q, err := a.purchaseService.Quote(a.intent)
	if err != nil {
		a.println("Cannot quote:", err)
		return err
	}
	amount := a.intent.Amount
	if amount == "" {
		amount = "0"
	}
	a.printf("%s %s = %s → %s tokens\n", amount, a.intent.Currency, formatUSD(q.USDValue), formatTokens(q.TokenQuantity))
	return nil
}

func (a *App) Connect(ctx context.Context) error {
	err := a.wallet.Connect(ctx)
	switch {
	case err == nil:
		a.println("Wallet connected:", strings.Join(a.wallet.Accounts(), ", "))
	case errors.Is(err, common.ErrProviderUnavailable):
		a.println("No wallet available. Start a Web3 wallet and point -w (wallet_rpc_url) at its JSON-RPC endpoint.")
	case errors.Is(err, common.ErrConnectionRejected):
		a.println("Wallet connection was rejected")
	default:
		a.println("Failed to connect wallet")
	}
	return err
}

// Buy submits the current form. Each call creates a new purchase record.
func (a *App) Buy(ctx context.Context) error {
	conf, err := a.purchaseService.Submit(ctx, a.intent)
	switch {
	case err == nil:
		a.printf("Purchase recorded! Please send %s %s to: %s\n", conf.Amount, conf.Currency, conf.DepositAddress)
		a.printf("You will receive %s tokens (%s)\n", formatTokens(conf.Record.TokenQuantity), formatUSD(conf.Record.AmountUSD))
	case a.reportAuth(err):
	case errors.Is(err, common.ErrWalletNotConnected):
		a.println("Please connect your wallet first")
	case errors.Is(err, common.ErrInvalidAmount):
		a.println("Please enter a valid amount")
	case errors.Is(err, common.ErrUnsupportedCurrency):
		a.println("Unsupported currency:", a.intent.Currency)
	default:
		a.println(client.Message(err, "Error recording purchase. Please try again."))
	}
	return err
}

func (a *App) History(ctx context.Context) error {
	h, err := a.purchaseService.History(ctx)
	if err != nil {
		if !a.reportAuth(err) {
			a.println(client.Message(err, "Failed to load purchase history"))
		}
		return err
	}

	a.printf("Purchases: %d   Invested: %s   Tokens: %s\n",
		h.Stats.PurchaseCount, formatUSD(h.Stats.TotalInvested), formatTokens(h.Stats.TotalTokens))
	if len(h.Records) == 0 {
		a.println("No purchases yet")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tAMOUNT\tUSD\tTOKENS\tSTATUS")
	for _, r := range h.Records {
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\t%s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.AmountCrypto, r.Currency,
			formatUSD(r.AmountUSD), formatTokens(r.TokenQuantity), r.Status)
	}
	return tw.Flush()
}
