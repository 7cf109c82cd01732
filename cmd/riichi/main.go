package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kevin-chtw/tw_riichi/game"
	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/kevin-chtw/tw_riichi/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rulePath  string
	seed      int64
	games     int
	qijia     int
	paipuPath string
	wallPaths []string
	log       = utils.Setup("riichi", logrus.InfoLevel)
)

func main() {
	root := &cobra.Command{
		Use:   "riichi",
		Short: "日麻规则引擎",
	}
	root.PersistentFlags().StringVar(&rulePath, "rule", "", "规则配置文件(yaml)")

	selfplay := &cobra.Command{
		Use:   "selfplay",
		Short: "四个机器人自对局, 输出牌谱",
		RunE:  runSelfplay,
	}
	selfplay.Flags().Int64Var(&seed, "seed", 0, "乱数种子, 0为随机")
	selfplay.Flags().IntVar(&games, "games", 1, "对局数")
	selfplay.Flags().IntVar(&qijia, "qijia", 0, "起家")
	selfplay.Flags().StringVar(&paipuPath, "paipu", "", "牌谱输出文件, 空则输出到标准输出")
	selfplay.Flags().StringSliceVar(&wallPaths, "wall", nil, "配牌预设文件(yaml), 按局依次使用")
	root.AddCommand(selfplay)

	xiangting := &cobra.Command{
		Use:   "xiangting <shoupai>",
		Short: "计算向听数与听牌",
		Args:  cobra.ExactArgs(1),
		RunE:  runXiangting,
	}
	root.AddCommand(xiangting)

	var (
		zhuangfeng int
		menfeng    int
		baopai     []string
		lizhi      int
	)
	score := &cobra.Command{
		Use:   "score <shoupai> [rongpai]",
		Short: "对和了形算点",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := loadRule()
			if err != nil {
				return err
			}
			shoupai, err := mahjong.ParseShoupai(args[0])
			if err != nil {
				return err
			}
			rongpai := ""
			if len(args) > 1 {
				rongpai = args[1]
			}
			param := &mahjong.HuleParam{
				Rule:       rule,
				Zhuangfeng: zhuangfeng,
				Menfeng:    menfeng,
				Baopai:     baopai,
			}
			param.Hupai.Lizhi = lizhi
			result, err := mahjong.Hule(shoupai, rongpai, param)
			if err != nil {
				return err
			}
			for _, h := range result.Hupai {
				if h.Damanguan > 0 {
					fmt.Printf("%s (役満)\n", h.Name)
				} else {
					fmt.Printf("%s %d翻\n", h.Name, h.Fanshu)
				}
			}
			if result.Damanguan > 0 {
				fmt.Printf("%d点\n", result.Defen)
			} else {
				fmt.Printf("%d符%d翻 %d点\n", result.Fu, result.Fanshu, result.Defen)
			}
			return nil
		},
	}
	score.Flags().IntVar(&zhuangfeng, "zhuangfeng", mahjong.Dong, "场风(0东1南2西3北)")
	score.Flags().IntVar(&menfeng, "menfeng", mahjong.Dong, "门风, 0为庄家")
	score.Flags().StringSliceVar(&baopai, "baopai", nil, "宝牌指示牌")
	score.Flags().IntVar(&lizhi, "lizhi", 0, "立直(0无1立直2两立直)")
	root.AddCommand(score)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadRule() (*mahjong.Rule, error) {
	if rulePath == "" {
		return mahjong.NewRule(), nil
	}
	return mahjong.LoadRule(rulePath)
}

func runSelfplay(cmd *cobra.Command, args []string) error {
	rule, err := loadRule()
	if err != nil {
		return err
	}
	var walls [][]string
	for _, path := range wallPaths {
		wall, err := game.LoadWallPreset(path)
		if err != nil {
			return fmt.Errorf("wall preset %s: %w", path, err)
		}
		walls = append(walls, wall)
	}
	for i := 0; i < games; i++ {
		g := game.NewGame(rule, []game.Player{
			game.NewBotPlayer(), game.NewBotPlayer(),
			game.NewBotPlayer(), game.NewBotPlayer(),
		}, nil, fmt.Sprintf("selfplay#%d", i+1))
		if seed != 0 {
			g.SetSeed(seed + int64(i))
		}
		if len(walls) > 0 {
			g.SetWalls(walls)
		}
		paipu := g.Play(qijia)
		data, err := paipu.Marshal()
		if err != nil {
			return err
		}
		if paipuPath == "" {
			fmt.Println(string(data))
			continue
		}
		name := paipuPath
		if games > 1 {
			name = fmt.Sprintf("%s.%d", paipuPath, i+1)
		}
		if err := os.WriteFile(name, data, 0o644); err != nil {
			return err
		}
		log.Infof("paipu saved: %s", name)
	}
	return nil
}

func runXiangting(cmd *cobra.Command, args []string) error {
	shoupai, err := mahjong.ParseShoupai(args[0])
	if err != nil {
		return err
	}
	n := mahjong.Xiangting(shoupai)
	fmt.Printf("xiangting: %d\n", n)
	if n == 0 {
		fmt.Printf("tingpai: %s\n", strings.Join(mahjong.Tingpai(shoupai), " "))
	}
	return nil
}
