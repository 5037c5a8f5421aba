package config

import (
	"context"
	"log"

	"github.com/lixenwraith/gridsketch/watch"
)

// Watch reloads path into store whenever the file changes, blocking until ctx is done
// A file that fails to parse leaves the previous snapshot in place
func Watch(ctx context.Context, path string, store *Store, opts ...watch.Option) error {
	reload := func([]string) {
		cfg, err := Load(path)
		if err != nil {
			log.Printf("config reload: %v", err)
			return
		}
		store.Set(cfg)
		log.Printf("config reloaded from %s", path)
	}

	opts = append([]watch.Option{
		watch.WithOnChange(reload),
		watch.WithOnError(func(err error) { log.Printf("config watch: %v", err) }),
	}, opts...)

	w, err := watch.New(path, opts...)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
