// Package hslog turns the Hearthstone client log into structured match events.
//
// This package allows you to:
//   - Classify Zone and Power log lines into typed facts
//   - Track the two players of the current match across many lines
//   - Follow the live log file and receive events on a channel
//
// # Basic Usage
//
// To follow the log in real-time:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	events, errs, err := hslog.Watch(ctx, hslog.WithLogConfig(""))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for {
//	    select {
//	    case event, ok := <-events:
//	        if !ok {
//	            return
//	        }
//	        switch event.Type {
//	        case hslog.EventMatchStart:
//	            fmt.Printf("%s vs %s\n", event.Players[0].Hero, event.Players[1].Hero)
//	        case hslog.EventMatchOver:
//	            fmt.Printf("%s %s\n", event.Players[0].Name, event.Players[0].Status)
//	        case hslog.EventAction:
//	            fmt.Printf("%s -> %s\n", event.Action.Name, event.Action.ToZone)
//	        }
//	    case err, ok := <-errs:
//	        if !ok {
//	            return
//	        }
//	        log.Printf("error: %v", err)
//	    }
//	}
//
// To drive the parser from your own line source, implement Handler (or use
// HandlerFuncs) and feed lines in file order:
//
//	p := hslog.NewParser(hslog.HandlerFuncs{
//	    MatchStart: func(players []hslog.Player) { ... },
//	}, nil)
//	p.Process(lines)
//
// # Log Configuration
//
// The client only writes Zone and Power lines when its log.config enables
// them. WithLogConfig overwrites that file when watching starts; the client
// must be restarted to pick it up.
//
// # Platform Support
//
// Default log locations are known for Windows and macOS. Elsewhere, set
// WithLogFile or the HSLOG_LOG_FILE environment variable.
package hslog
