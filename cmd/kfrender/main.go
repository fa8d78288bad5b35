// Command kfrender renders the demo keyframes animation to PNG frames and
// optionally streams it over MQTT.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/keyframes"
	"github.com/gogpu/keyframes/internal/config"
	"github.com/gogpu/keyframes/internal/sample"
	"github.com/gogpu/keyframes/render"
	_ "github.com/gogpu/keyframes/render/raster"
	"github.com/gogpu/keyframes/stream"
)

// pngCanvas is implemented by canvases that produce images.
type pngCanvas interface {
	render.Canvas
	Clear(keyframes.RGBA)
	SavePNG(path string) error
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML or TOML config file")
		output     = flag.String("out", "", "output directory (overrides config)")
		frames     = flag.Int("frames", -1, "number of frames to render (0 = one loop)")
		workers    = flag.Int("workers", 0, "render goroutines (overrides config)")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		keyframes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	mqtt.ERROR = log.New(os.Stderr, "mqtt: ", 0)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *frames >= 0 {
		cfg.Frames = *frames
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	anim, err := sample.Build(sampleParams(cfg))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	start := time.Now()
	total := cfg.FrameTotal()
	if err := renderFrames(ctx, cfg, anim, total); err != nil {
		return err
	}
	log.Printf("rendered %d frames to %s in %v", total, cfg.Output, time.Since(start).Round(time.Millisecond))

	if cfg.MQTT.URL == "" {
		return nil
	}
	return streamLoop(ctx, cfg, anim)
}

func sampleParams(cfg *config.Config) sample.Params {
	e, _ := keyframes.Preset(cfg.Sample.Easing)
	return sample.Params{
		FrameRate:     cfg.Sample.FrameRate,
		FrameCount:    cfg.Sample.FrameCount,
		Easing:        e,
		Fill:          keyframes.MustHex(cfg.Sample.Fill),
		Stroke:        keyframes.MustHex(cfg.Sample.Stroke),
		GradientStart: keyframes.MustHex(cfg.Sample.GradientStart),
		GradientEnd:   keyframes.MustHex(cfg.Sample.GradientEnd),
	}
}

// evaluatorOptions returns the options shared by render workers and the
// streaming animator.
func evaluatorOptions(cfg *config.Config) []keyframes.Option {
	return []keyframes.Option{
		keyframes.WithBounds(float64(cfg.Width), float64(cfg.Height)),
		keyframes.WithGradientPrecision(cfg.GradientPrecision),
		keyframes.WithSubstitutes(map[string]keyframes.Substitute{
			sample.Badge: {Drawable: badge(cfg)},
		}),
	}
}

// badge is the image substituted for the pathless demo feature.
func badge(cfg *config.Config) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 12, 12))
	c := keyframes.MustHex(cfg.Sample.Stroke).NRGBA()
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

// renderFrames splits [0, total) into contiguous ranges, one per worker.
// Each worker owns its evaluator and canvas; only the sealed animation is
// shared.
func renderFrames(ctx context.Context, cfg *config.Config, anim *keyframes.Animation, total int) error {
	bg := keyframes.MustHex(cfg.Background)
	n := min(cfg.Workers, total)
	chunk := (total + n - 1) / n

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < n; w++ {
		first, last := w*chunk, min((w+1)*chunk, total)
		g.Go(func() error {
			ev, err := keyframes.NewEvaluator(anim, evaluatorOptions(cfg)...)
			if err != nil {
				return err
			}
			ev.Viewport().SetDirectionalScale(cfg.Scale.FromCenter, cfg.Scale.FromEnd, mustDirection(cfg))

			c, err := render.NewCanvas(cfg.Canvas, cfg.Width, cfg.Height)
			if err != nil {
				return err
			}
			out, ok := c.(pngCanvas)
			var d render.Drawer
			for i := first; i < last; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				ev.SetFrameProgress(float64(i % (anim.FrameCount + 1)))
				if !ok {
					d.Draw(c, ev)
					continue
				}
				out.Clear(bg)
				d.Draw(out, ev)
				if err := out.SavePNG(filepath.Join(cfg.Output, fmt.Sprintf("frame_%04d.png", i))); err != nil {
					return err
				}
			}
			keyframes.Logger().Debug("worker done", "first", first, "last", last-1)
			return nil
		})
	}
	return g.Wait()
}

func mustDirection(cfg *config.Config) keyframes.ScaleDirection {
	dir, err := cfg.ScaleDirection()
	if err != nil {
		panic(err)
	}
	return dir
}

// streamLoop plays one loop of the animation in real time and publishes
// every accepted frame.
func streamLoop(ctx context.Context, cfg *config.Config, anim *keyframes.Animation) error {
	options := mqtt.NewClientOptions().
		AddBroker(cfg.MQTT.URL).
		SetClientID(cfg.MQTT.ClientID).
		SetUsername(cfg.MQTT.Username).
		SetPassword(cfg.MQTT.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second)
	client := mqtt.NewClient(options)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return fmt.Errorf("connect to %s: timed out", cfg.MQTT.URL)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("connect to %s: %w", cfg.MQTT.URL, err)
	}
	defer client.Disconnect(250)

	opts := append(evaluatorOptions(cfg), keyframes.WithMaxFrameRate(cfg.MQTT.MaxFrameRate))
	an, err := keyframes.NewAnimator(anim, opts...)
	if err != nil {
		return err
	}
	an.Evaluator().Viewport().SetDirectionalScale(cfg.Scale.FromCenter, cfg.Scale.FromEnd, mustDirection(cfg))
	pub := stream.NewPublisher(client, cfg.MQTT.Topic, cfg.MQTT.QoS)
	an.SetAnimationListener(func() {
		keyframes.Logger().Info("stream loop finished", "topic", pub.Topic())
	})

	requested := false
	interval := time.Second / time.Duration(anim.FrameRate)
	err = an.Run(ctx, interval, func(ev *keyframes.Evaluator) error {
		if !requested {
			an.StopAtLoopEnd()
			requested = true
		}
		return pub.Publish(ev)
	})
	if err != nil {
		return err
	}
	log.Printf("streamed %d frames to %s", pub.Sent(), pub.Topic())
	return nil
}
