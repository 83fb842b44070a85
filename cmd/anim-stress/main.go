package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/plus3/anim/anim"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	playerCount := flag.Int("players", 10000, "The number of players to advance each tick.")
	workerCount := flag.Int("workers", runtime.GOMAXPROCS(0), "The number of worker goroutines advancing players.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting animation stress test...")

	// 1. Build a pool of varied animations and one player per slot.
	log.Printf("Creating %d players...\n", *playerCount)
	rng := rand.New(rand.NewSource(1))
	animations := buildAnimations(rng)
	players := make([]*anim.Player, *playerCount)
	for i := range players {
		p, err := anim.NewPlayer(animations[rng.Intn(len(animations))])
		if err != nil {
			log.Fatalf("Failed to create player: %v", err)
		}
		players[i] = p
	}
	log.Println("Population complete.")

	// 2. Run the simulation loop.
	report := &Report{
		Duration:       *duration,
		Players:        *playerCount,
		Workers:        *workerCount,
		Animations:     len(animations),
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalTicks int64
	var totalMilestones atomic.Int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			tickStart := time.Now()
			tick(players, *workerCount, deltaTime, &totalMilestones)
			tickDuration := time.Since(tickStart)

			report.TickTime.Samples = append(report.TickTime.Samples, tickDuration)
			totalTicks++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalTicks = totalTicks
	report.TotalMilestones = totalMilestones.Load()
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 3. Generate Report to Console.
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// tick advances every player by deltaTime, sharded across workers. Each
// player is owned by exactly one worker per tick, so no locking is needed.
func tick(players []*anim.Player, workers int, deltaTime time.Duration, milestones *atomic.Int64) {
	var wg sync.WaitGroup
	chunk := (len(players) + workers - 1) / workers
	for start := 0; start < len(players); start += chunk {
		end := start + chunk
		if end > len(players) {
			end = len(players)
		}
		wg.Add(1)
		go func(shard []*anim.Player) {
			defer wg.Done()
			var crossed int64
			for _, p := range shard {
				ms, err := p.Advance(deltaTime)
				if err != nil {
					log.Fatalf("Advance failed: %v", err)
				}
				crossed += int64(len(ms))
				if p.Done() {
					p.Reset()
				}
			}
			milestones.Add(crossed)
		}(players[start:end])
	}
	wg.Wait()
}

// buildAnimations returns a mix of compositions exercising every playback
// feature: multiple clips, repeats, directions, easings and markers.
func buildAnimations(rng *rand.Rand) []anim.Animation {
	sheet := anim.NewSpritesheet(16, 16)
	easings := []anim.Easing{
		anim.Linear,
		anim.EaseIn(anim.Quadratic),
		anim.EaseOut(anim.Sine),
		anim.EaseInOut(anim.Cubic),
	}
	directions := []anim.Direction{anim.Forward, anim.Backward, anim.PingPong}

	var out []anim.Animation
	for i := 0; i < 64; i++ {
		clipCount := rng.Intn(3) + 1
		clips := make([]anim.Clip, clipCount)
		for c := range clips {
			row := rng.Intn(sheet.Rows())
			clip := anim.NewClip(sheet.Row(row)...).
				WithDuration(anim.PerFrame(time.Duration(rng.Intn(40)+10) * time.Millisecond)).
				WithRepeat(anim.Times(rng.Intn(3) + 1)).
				WithDirection(directions[rng.Intn(len(directions))]).
				WithEasing(easings[rng.Intn(len(easings))])
			if rng.Intn(2) == 0 {
				clip = clip.WithMarker(anim.MarkerID(c+1), rng.Intn(sheet.Columns()))
			}
			clips[c] = clip
		}
		out = append(out, anim.FromClips(clips...).
			WithDirection(directions[rng.Intn(len(directions))]))
	}
	return out
}
