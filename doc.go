/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package lstream wraps domain objects in declarative decorators so a
// presentation layer can read a curated view of them.
//
// A decorator class is a Type: a name plus the attributes it streams.
// Reading a streamed attribute through a Stream wraps whatever the subject
// returns:
//
//   - a collection becomes a *Streams whose elements are wrapped by the
//     class named after the first element's type ("Post" -> "PostStream"),
//     or after the attribute when the collection is empty
//     ("comments" -> "CommentsStream");
//   - a single value is wrapped by the class named after its type, or
//     returned as is when no such class is defined;
//   - an explicit class (declaration.As) must exist, otherwise reading fails
//     with a *StreamNotDefinedError.
//
// Attributes that are not declared pass through to the subject. A type may
// delegate to one subject method: with prefix off, Stream.Index calls it;
// with prefix on, every undeclared read returns an apis.Callable forwarding
// to the subject method of the same name.
//
//	blogs := lstream.MustDefine("BlogStream", lstream.Streamed("posts"))
//	lstream.MustDefine("PostStream")
//
//	posts, err := blogs.Wrap(blog, map[string]any{"viewer": user}).Get("posts")
//
// The context given to Wrap is shared unchanged with every decorator
// reached from the root.
//
// # Global state
//
// Classes live in a process-wide registry held, together with the
// configuration, the type name registry, the resolver and the builder, in
// an immutable snapshot behind an atomic pointer. Reads never lock. Writers
// (SetConfig, SetBuilder, SetRegistry, SetResolver, SetAll, Reset) serialize
// on a mutex, build a new snapshot and publish it. SetRegistry and
// SetResolver pin their layer so configuration changes stop rebuilding it
// until it is unpinned.
//
// Declarations are set up once, before concurrent use; decorators are
// cheap and built on every read.
package lstream
