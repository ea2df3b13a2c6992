/*
Kinetic is a rigid-body visualization testbed: it mirrors a physics world
into a renderable scene and keeps both in sync frame by frame.
*/
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/kinetic/engine/core"
	"github.com/spaghettifunk/kinetic/testbed"
)

func main() {
	var (
		configPath string
		sceneName  string
		drawAxes   bool
		watch      bool
	)

	root := &cobra.Command{
		Use:   "kinetic",
		Short: "Rigid-body visualization testbed",
		Long:  "Kinetic renders the rigid bodies of a physics world, keeping every scene node in sync with its body's pose.",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := testbed.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if sceneName != "" {
				config.Scene = sceneName
			}
			if drawAxes {
				config.DrawAxes = true
			}

			t, err := testbed.NewFromScene(config.Scene, config)
			if err != nil {
				return fmt.Errorf("%w, available: %s", err, sceneNames())
			}

			if watch && configPath != "" {
				stop, err := testbed.WatchConfig(configPath, t.ApplyConfig)
				if err != nil {
					core.LogWarn("config watch disabled: %s", err.Error())
				} else {
					defer stop()
				}
			}

			return t.Run()
		},
	}

	root.Flags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	root.Flags().StringVarP(&sceneName, "scene", "s", "", "scene to run ("+sceneNames()+")")
	root.Flags().BoolVar(&drawAxes, "axes", false, "draw per-body coordinate axes")
	root.Flags().BoolVarP(&watch, "watch", "w", false, "hot-reload the config file while running")

	root.AddCommand(&cobra.Command{
		Use:   "scenes",
		Short: "List the available scenes",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(sceneNames())
		},
	})

	if err := root.Execute(); err != nil {
		core.LogError(err.Error())
		os.Exit(1)
	}
}

func sceneNames() string {
	names := make([]string, 0, len(testbed.Scenes))
	for name := range testbed.Scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
