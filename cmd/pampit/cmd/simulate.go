package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Gelotto/cw-pampit-vault/x/vault/keeper"
	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

const (
	FlagMsg            = "msg"
	FlagSender         = "sender"
	FlagPairAddress    = "pair-address"
	FlagFailCreatePair = "fail-create-pair"
	FlagMetrics        = "metrics"
)

// SimulationResult is what a dry run prints
type SimulationResult struct {
	Instantiate   *wasmvmtypes.Response       `json:"instantiate"`
	Replies       []ReplyResult               `json:"replies"`
	State         *keeper.ConfigResponse      `json:"state"`
	PairAddresses []types.PairAddress         `json:"pair_addresses"`
	Pending       []types.PendingContinuation `json:"pending"`
}

// ReplyResult is the vault's answer to one correlated reply
type ReplyResult struct {
	ID       uint64                `json:"id"`
	Response *wasmvmtypes.Response `json:"response"`
}

// Simulator runs vault requests against an in-memory store. A request and the
// replies to its sub-messages share one cached context that is written only
// if all of them succeed.
type Simulator struct {
	keeper *keeper.Keeper
	ctx    sdk.Context
}

// NewSimulator creates a vault wired to cfg and querier at blockTime
func NewSimulator(cfg Config, querier types.WasmQuerier, logger log.Logger, blockTime time.Time) (*Simulator, error) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	if err := stateStore.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load simulation store: %w", err)
	}

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: blockTime, Height: 1}, false, logger)
	k := keeper.NewKeeper(storeKey, querier, cfg.ContractAddress, cfg.Plays()...)
	if err := k.SetParams(ctx, cfg.Params()); err != nil {
		return nil, err
	}

	return &Simulator{keeper: k, ctx: ctx}, nil
}

// Run instantiates the vault and delivers result to every sub-message that
// asked for a reply. A sub-message that replies only on success and fails
// reverts the whole request.
func (s *Simulator) Run(sender string, msg types.MsgInstantiate, result wasmvmtypes.SubMsgResult) (*SimulationResult, error) {
	ctx, write := s.ctx.CacheContext()

	resp, err := s.keeper.InitMigration(ctx, sender, msg)
	if err != nil {
		return nil, errorsmod.Wrap(err, "instantiate")
	}

	out := &SimulationResult{
		Instantiate: resp,
		Replies:     []ReplyResult{},
	}
	for _, m := range resp.Messages {
		if m.ReplyOn == wasmvmtypes.ReplyNever {
			continue
		}
		if result.Err != "" && m.ReplyOn == wasmvmtypes.ReplySuccess {
			return nil, errorsmod.Wrapf(types.ErrExchangeReply, "sub-message %d failed: %s", m.ID, result.Err)
		}
		replyResp, err := s.keeper.Reply(ctx, wasmvmtypes.Reply{ID: m.ID, Result: result})
		if err != nil {
			return nil, errorsmod.Wrapf(err, "reply %d", m.ID)
		}
		out.Replies = append(out.Replies, ReplyResult{ID: m.ID, Response: replyResp})
	}
	write()

	if out.State, err = s.keeper.QueryConfig(s.ctx); err != nil {
		return nil, err
	}
	if out.Pending, err = s.keeper.QueryPending(s.ctx); err != nil {
		return nil, err
	}
	out.PairAddresses = s.keeper.GetAllPairAddresses(s.ctx)

	return out, nil
}

// pairQuerier stands in for the exchange factories: every pair query sent to
// a known factory resolves to the same pair address.
type pairQuerier struct {
	factories   map[string]bool
	pairAddress string
}

func newPairQuerier(pairAddress string, factories ...string) pairQuerier {
	q := pairQuerier{factories: make(map[string]bool, len(factories)), pairAddress: pairAddress}
	for _, f := range factories {
		q.factories[f] = true
	}
	return q
}

func (q pairQuerier) QuerySmart(_ context.Context, contractAddr string, req []byte) ([]byte, error) {
	if !q.factories[contractAddr] {
		return nil, fmt.Errorf("no contract at %s", contractAddr)
	}
	var query struct {
		Pair json.RawMessage `json:"pair"`
	}
	if err := json.Unmarshal(req, &query); err != nil || query.Pair == nil {
		return nil, fmt.Errorf("unsupported query %s", req)
	}
	return json.Marshal(map[string]string{"contract_addr": q.pairAddress})
}

// SimulateCmd dry-runs a vault migration
func SimulateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Dry-run a vault migration on an in-memory store",
		Long: `Instantiate a vault from an instantiate message (JSON, "-" for stdin), answer
its create-pair call as the exchange would and print every response together
with the resulting vault state.`,
		Example: "pampit simulate --msg instantiate.json --pair-address inj1...",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			path, _ := cmd.Flags().GetString(FlagMsg)
			msg, err := readInstantiateMsg(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}
			sender, _ := cmd.Flags().GetString(FlagSender)
			if sender == "" {
				sender = msg.Manager
			}
			pairAddress, _ := cmd.Flags().GetString(FlagPairAddress)
			if err := types.ValidateAddress(pairAddress); err != nil {
				return errorsmod.Wrap(err, FlagPairAddress)
			}

			result := wasmvmtypes.SubMsgResult{Ok: &wasmvmtypes.SubMsgResponse{}}
			if failure, _ := cmd.Flags().GetString(FlagFailCreatePair); failure != "" {
				result = wasmvmtypes.SubMsgResult{Err: failure}
			}

			querier := newPairQuerier(pairAddress, cfg.AstroportFactory, cfg.DojoswapFactory)
			sim, err := NewSimulator(cfg, querier, newLogger(cmd), time.Now().UTC())
			if err != nil {
				return err
			}
			out, err := sim.Run(sender, msg, result)
			if err != nil {
				return err
			}
			if err := printJSON(cmd.OutOrStdout(), out); err != nil {
				return err
			}

			if showMetrics, _ := cmd.Flags().GetBool(FlagMetrics); showMetrics {
				return writeMetrics(cmd.ErrOrStderr())
			}
			return nil
		},
	}

	cmd.Flags().String(FlagMsg, "", "instantiate message file, - for stdin")
	cmd.Flags().String(FlagSender, "", "instantiating account (defaults to the manager)")
	cmd.Flags().String(FlagPairAddress, defaultPairAddress(), "address the exchange assigns the new pair")
	cmd.Flags().String(FlagFailCreatePair, "", "fail the create-pair call with this error")
	cmd.Flags().Bool(FlagMetrics, false, "print vault metrics after the run")
	_ = cmd.MarkFlagRequired(FlagMsg)

	return cmd
}

func readInstantiateMsg(stdin io.Reader, path string) (types.MsgInstantiate, error) {
	var (
		bz  []byte
		err error
	)
	if path == "-" {
		bz, err = io.ReadAll(stdin)
	} else {
		bz, err = os.ReadFile(path)
	}
	if err != nil {
		return types.MsgInstantiate{}, fmt.Errorf("failed to read instantiate message: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(bz))
	dec.DisallowUnknownFields()
	var msg types.MsgInstantiate
	if err := dec.Decode(&msg); err != nil {
		return types.MsgInstantiate{}, errorsmod.Wrapf(types.ErrValidation, "invalid instantiate message: %s", err)
	}
	return msg, nil
}

func writeMetrics(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "pampit_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func defaultPairAddress() string {
	addr, err := sdk.Bech32ifyAddressBytes("inj", address.Module(types.ModuleName, []byte("simulated_pair")))
	if err != nil {
		panic(err)
	}
	return addr
}
