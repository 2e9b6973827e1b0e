package main

import (
	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/domain/payment"
	"github.com/amirasaad/aliasregistry/pkg/service/registry"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func (c *cli) initCmd() *cobra.Command {
	var (
		maxSize                 int
		tokenAddress, tokenHash string
		destAddress, destHash   string
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the registry configuration",
		Long: `Store the registry configuration. This can only be done once.

Setting the token contract and payment destination enables the payment gate:
aliases can then only be created by paying the token contract.`,
		Args: cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, args []string) (any, string, error) {
			var params alias.InitParams
			if cmd.Flags().Changed("max-size") {
				params.MaxAliasSize = &maxSize
			}
			if tokenAddress != "" || tokenHash != "" {
				params.TokenContract = &alias.ContractRef{Address: alias.Identity(tokenAddress), CodeHash: tokenHash}
			}
			if destAddress != "" || destHash != "" {
				params.PaymentDestination = &alias.ContractRef{Address: alias.Identity(destAddress), CodeHash: destHash}
			}
			out, err := c.app.RegistryService.Init(cmd.Context(), params)
			return out, "Registry initialized", err
		}),
	}
	cmd.Flags().IntVar(&maxSize, "max-size", alias.DefaultMaxAliasSize, "maximum alias length in bytes")
	cmd.Flags().StringVar(&tokenAddress, "token-address", "", "token contract address")
	cmd.Flags().StringVar(&tokenHash, "token-hash", "", "token contract code hash")
	cmd.Flags().StringVar(&destAddress, "dest-address", "", "payment destination address")
	cmd.Flags().StringVar(&destHash, "dest-hash", "", "payment destination code hash")
	return cmd
}

func (c *cli) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the registry configuration",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, args []string) (any, string, error) {
			out, err := c.app.RegistryService.Config(cmd.Context())
			return out, "Registry config", err
		}),
	}
}

func (c *cli) createCmd() *cobra.Command {
	var avatar string
	cmd := &cobra.Command{
		Use:   "create <alias>",
		Short: "Create an alias owned by --as",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string) (any, string, error) {
			owner, err := c.identity(cmd.Context())
			if err != nil {
				return nil, "", err
			}
			command := registry.CreateCommand{Owner: owner, Alias: args[0]}
			if avatar != "" {
				command.AvatarURL = &avatar
			}
			out, err := c.app.RegistryService.Create(cmd.Context(), command)
			return out, "Alias created", err
		}),
	}
	cmd.Flags().StringVar(&avatar, "avatar", "", "avatar URL")
	return cmd
}

func (c *cli) destroyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "destroy <alias>",
		Short: "Destroy an alias owned by --as",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string) (any, string, error) {
			caller, err := c.identity(cmd.Context())
			if err != nil {
				return nil, "", err
			}
			out, err := c.app.RegistryService.Destroy(cmd.Context(), caller, args[0])
			return out, "Alias destroyed", err
		}),
	}
}

func (c *cli) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <alias|address> <value>",
		Short: "Look up a record by alias or owner address",
		Args:  cobra.ExactArgs(2),
		RunE: c.run(func(cmd *cobra.Command, args []string) (any, string, error) {
			out, err := c.app.RegistryService.Search(cmd.Context(), args[0], args[1])
			return out, "Alias found", err
		}),
	}
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <alias>",
		Short: "Show the record for an alias",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string) (any, string, error) {
			out, err := c.app.RegistryService.Show(cmd.Context(), args[0])
			return out, "Alias found", err
		}),
	}
}

func (c *cli) receiveCmd() *cobra.Command {
	var from, amount, avatar string
	cmd := &cobra.Command{
		Use:   "receive <alias>",
		Short: "Deliver a token payment notification sent by --as",
		Long: `Simulate the token contract notifying the registry of a payment.
--as is the notifying token contract and --from the paying account, which
becomes the owner of the alias.`,
		Args: cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, args []string) (any, string, error) {
			sender, err := c.identity(cmd.Context())
			if err != nil {
				return nil, "", err
			}
			value, err := decimal.NewFromString(amount)
			if err != nil {
				return nil, "", err
			}
			req := payment.CreateRequest{Alias: args[0]}
			if avatar != "" {
				req.AvatarURL = &avatar
			}
			payload, err := payment.EncodePayload(req)
			if err != nil {
				return nil, "", err
			}
			out, err := c.app.RegistryService.Receive(cmd.Context(), payment.Notification{
				Sender:  sender,
				From:    alias.Identity(from),
				Amount:  value,
				Payload: payload,
			})
			return out, "Alias created", err
		}),
	}
	cmd.Flags().StringVar(&from, "from", "", "paying account")
	cmd.Flags().StringVar(&amount, "amount", payment.FixedPrice.String(), "amount received")
	cmd.Flags().StringVar(&avatar, "avatar", "", "avatar URL")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}
